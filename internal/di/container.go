// Package di provides a minimal service registry for wiring bounded contexts.
// Services are registered either as instances or as lazy factories resolved on
// first Get; resolution is memoized.
package di

import (
	"fmt"
	"sync"
)

// ServiceRegistry is the read side of the container.
type ServiceRegistry interface {
	// Get returns the service registered under key, resolving its factory if
	// necessary. Panics if the key is unknown: a missing service is a wiring
	// bug, not a runtime condition.
	Get(key string) any
}

// Container is the write side: modules register their services during startup.
type Container interface {
	ServiceRegistry

	// Register stores an already-built service instance.
	Register(key string, service any)

	// RegisterFactory stores a lazy constructor for the service.
	RegisterFactory(key string, factory func(ServiceRegistry) any)
}

type container struct {
	mu        sync.Mutex
	services  map[string]any
	factories map[string]func(ServiceRegistry) any
}

// NewContainer creates an empty container.
func NewContainer() Container {
	return &container{
		services:  make(map[string]any),
		factories: make(map[string]func(ServiceRegistry) any),
	}
}

func (c *container) Register(key string, service any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[key] = service
}

func (c *container) RegisterFactory(key string, factory func(ServiceRegistry) any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factories[key] = factory
}

func (c *container) Get(key string) any {
	c.mu.Lock()
	if svc, ok := c.services[key]; ok {
		c.mu.Unlock()
		return svc
	}
	factory, ok := c.factories[key]
	c.mu.Unlock()

	if !ok {
		panic(fmt.Sprintf("di: service %q not registered", key))
	}

	// Resolve outside the lock so factories can Get their own dependencies.
	svc := factory(c)

	c.mu.Lock()
	c.services[key] = svc
	c.mu.Unlock()

	return svc
}

// RegisterToken registers a typed factory under a token.
func RegisterToken[T any](c Container, token string, factory func(ServiceRegistry) T) {
	c.RegisterFactory(token, func(sr ServiceRegistry) any {
		return factory(sr)
	})
}

// GetToken resolves a typed service by token.
func GetToken[T any](sr ServiceRegistry, token string) T {
	svc, ok := sr.Get(token).(T)
	if !ok {
		panic(fmt.Sprintf("di: service %q has unexpected type", token))
	}
	return svc
}
