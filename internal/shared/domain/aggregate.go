package domain

// AggregateRoot is an entity that records the domain events it raises.
type AggregateRoot interface {
	Entity
	DomainEvents() []DomainEvent
	ClearDomainEvents()
	AddDomainEvent(event DomainEvent)
}

// BaseAggregateRoot provides event recording for aggregate roots.
type BaseAggregateRoot struct {
	BaseEntity
	domainEvents []DomainEvent
}

// NewBaseAggregateRoot creates a new aggregate root.
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		domainEvents: make([]DomainEvent, 0),
	}
}

// RehydrateBaseAggregateRoot recreates an aggregate root from persisted state.
func RehydrateBaseAggregateRoot(entity BaseEntity) BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   entity,
		domainEvents: make([]DomainEvent, 0),
	}
}

// DomainEvents returns the uncommitted domain events.
func (a *BaseAggregateRoot) DomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents discards the uncommitted domain events.
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = make([]DomainEvent, 0)
}

// AddDomainEvent records a domain event on the aggregate.
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}
