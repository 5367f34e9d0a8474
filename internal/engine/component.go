package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Serializable is implemented by components that can round-trip through
// the scene file. Registered via RegisterComponent.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// ComponentFactory creates an empty component ready for Deserialize.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a serializable component type by name.
// Called from init() in each component file.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic("component " + name + " already registered")
	}
	componentRegistry[name] = factory
}

// CreateComponent instantiates a registered component by type name.
// Returns nil for unknown types.
func CreateComponent(name string) Serializable {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil
	}
	return factory()
}
