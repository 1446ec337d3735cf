package catalog

import (
	"github.com/Alan-Rodz/DesignPatterns/pkg/patterns/behavioral"
	"github.com/Alan-Rodz/DesignPatterns/pkg/patterns/creational"
	"github.com/Alan-Rodz/DesignPatterns/pkg/patterns/structural"
)

// entries is the full demo index. Order here is display order.
var entries = []Entry{
	{
		Name:     "chain",
		Category: Behavioral,
		Summary:  "Pass a request along handlers until one satisfies it",
		Run:      behavioral.DemoChain,
		Doc: `# Chain of Responsibility

Each handler checks whether it can satisfy the request. A match stops the
chain and returns a result; anything else is forwarded to the successor.
A request no link can satisfy yields an absent result, which callers treat
as "untouched", not as a failure.

The demo wires Monkey -> Squirrel -> Dog and feeds the buffet: the first
capable animal eats, coffee is left untouched.`,
	},
	{
		Name:     "command",
		Category: Behavioral,
		Summary:  "Encapsulate an action and its parameters as an object",
		Run:      behavioral.DemoCommand,
		Doc: `# Command

A command captures its parameters at construction and performs a unit of
work when executed. Simple commands inline their logic; complex commands
delegate to a receiver. The invoker holds optional command slots and
skips any slot left unset.`,
	},
	{
		Name:     "iterator",
		Category: Behavioral,
		Summary:  "Lazily walk a bound numeric range",
		Run:      behavioral.DemoIterator,
		Doc: `# Iterator

A stateful, single-use cursor over a (start, end, step) range. Next
returns the value and a done flag; exhaustion is permanent and
idempotent. An empty range reports done on the very first call instead
of failing.`,
	},
	{
		Name:     "mediator",
		Category: Behavioral,
		Summary:  "Coordinate collaborators that never reference each other",
		Run:      behavioral.DemoMediator,
		Doc: `# Mediator

The mediator accepts references to independent collaborators and decides
one's action by inspecting the other's state; the fan and the power
supplier never know about each other. A second illustration shows a
middleware pipeline where each stage must call next() for the request to
advance — skipping the call short-circuits it.`,
	},
	{
		Name:     "observer",
		Category: Behavioral,
		Summary:  "Notify subscribed callbacks synchronously, in order",
		Run:      behavioral.DemoObserver,
		Doc: `# Observer

A subject keeps an ordered subscriber list. Emitting delivers the value
to every current subscriber, in subscription order, before Emit returns.
Unsubscribing affects future emissions only; one already in progress
still completes.`,
	},
	{
		Name:     "state",
		Category: Behavioral,
		Summary:  "Delegate behavior to the current state variant",
		Run:      behavioral.DemoState,
		Doc: `# State

The owner holds exactly one state at a time and delegates Think to it.
Transitions are explicit replacements through SetState; nothing outside
the owner swaps states behind its back.`,
	},
	{
		Name:     "template-method",
		Category: Behavioral,
		Summary:  "Fix the step order, vary the step bodies",
		Run:      behavioral.DemoTemplateMethod,
		Doc: `# Template Method

A recipe runs a fixed sequence: boil, brew, pour, hooks around serving.
Required steps are function fields checked at construction — a missing
one is a constructor error, never a runtime surprise. Hooks default to
no-ops.`,
	},
	{
		Name:     "visitor",
		Category: Behavioral,
		Summary:  "Double-dispatch operations over a closed element set",
		Run:      behavioral.DemoVisitor,
		Doc: `# Visitor

Each shape's Accept calls back into the visitor with its own concrete
type, so the visitor owns per-type behavior. Adding a shape means
touching every visitor — a deliberate trade-off: the element set is
closed, the operation set is open.`,
	},
	{
		Name:     "abstract-factory",
		Category: Creational,
		Summary:  "Create families of related products",
		Run:      creational.DemoAbstractFactory,
		Doc: `# Abstract Factory

A top-level selector returns a family factory; each family factory
creates controls in its own look and feel only. Unknown discriminators
fall to a default branch rather than failing.`,
	},
	{
		Name:     "builder",
		Category: Creational,
		Summary:  "Grow a product through fluent, optional steps",
		Run:      creational.DemoBuilder,
		Doc: `# Builder

Every Add method mutates the pizza and returns it, so toppings chain
fluently and the product stays inspectable at any point. This minimal
variant needs no terminal build step.`,
	},
	{
		Name:     "factory",
		Category: Creational,
		Summary:  "Map a discriminator to one concrete product",
		Run:      creational.DemoFactory,
		Doc: `# Factory

One creation function maps each discriminator to exactly one concrete
button. Unrecognized kinds take the default branch — the factory never
silently returns nothing.`,
	},
	{
		Name:     "prototype",
		Category: Creational,
		Summary:  "Derive objects from a base template with overrides",
		Run:      creational.DemoPrototype,
		Doc: `# Prototype

A derived object holds its own fields plus a reference to its prototype.
Lookups check own fields first, then fall back through the chain, hop by
hop, to the root.`,
	},
	{
		Name:     "singleton",
		Category: Creational,
		Summary:  "Exactly one instance per process",
		Run:      creational.DemoSingleton,
		Doc: `# Singleton

The accessor constructs the instance on first call and returns the
cached one forever after. The backing struct is unexported, so no other
package can construct a second instance; first access is safe under
concurrency.`,
	},
	{
		Name:     "adapter",
		Category: Structural,
		Summary:  "Make an incompatible interface fit the target contract",
		Run:      structural.DemoAdapter,
		Doc: `# Adapter

The wrapped service only speaks backwards. The adapter implements the
target contract by reversing the service's output, so client code
written against the contract works unmodified.`,
	},
	{
		Name:     "bridge",
		Category: Structural,
		Summary:  "Split abstraction and implementation hierarchies",
		Run:      structural.DemoBridge,
		Doc: `# Bridge

Remotes hold the Device contract, never a concrete device. New remotes
and new devices can be added independently; the advanced remote gains
Mute without any device changing.`,
	},
	{
		Name:     "facade",
		Category: Structural,
		Summary:  "One coarse call sequencing many subsystems",
		Run:      structural.DemoFacade,
		Doc: `# Facade

WatchMovie drives amplifier, projector and player in a fixed, correct
order — parameters before power-on, playback last. Callers never learn
the subsystems exist.`,
	},
	{
		Name:     "flyweight",
		Category: Structural,
		Summary:  "Share immutable intrinsic state through a factory cache",
		Run:      structural.DemoFlyweight,
		Doc: `# Flyweight

The factory caches flyweights by a deterministic key over brand, model
and color. Equal shared state always yields the same instance; per-car
plate and owner are passed per call and never stored.`,
	},
	{
		Name:     "proxy",
		Category: Structural,
		Summary:  "Intercept every access, then forward unchanged",
		Run:      structural.DemoProxy,
		Doc: `# Proxy

The logging proxy implements the same store contract as its target. It
logs each get and set, forwards the operation unchanged, and returns
exactly what the target returned.`,
	},
}
