package eventbus

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event DomainEvent)                                   {}
func (n *NullBus) Subscribe(eventType EventType, handler EventHandler) func()  { return func() {} }
func (n *NullBus) Close()                                                      {}
