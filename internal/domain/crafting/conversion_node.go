package crafting

// ConversionNode bridges representations of one substance, for example a bulk fluid
// and the containers carrying it. It is synthesized during pre-processing and never pinned.
//
// The input side lists representations produced by pinned recipes, the output side
// lists representations consumed by pinned recipes. A request for an output key is
// serviced by requesting the input key and converting through bulk units.
// Leftovers are only ever held in bulk units.
type ConversionNode struct {
	id        NodeID
	substance string
	bulkKey   ResourceKey

	inputs  []ResourceKey
	outputs []ResourceKey
	units   map[ResourceKey]int

	keyToEmptyContainer     map[ResourceKey]ResourceKey
	consumedEmptyContainers Ledger
	producedEmptyContainers Ledger

	fluidRemainder int
}

func newConversionNode(id NodeID, substance string, bulkKey ResourceKey) *ConversionNode {
	return &ConversionNode{
		id:                      id,
		substance:               substance,
		bulkKey:                 bulkKey,
		units:                   map[ResourceKey]int{bulkKey: 1},
		keyToEmptyContainer:     make(map[ResourceKey]ResourceKey),
		consumedEmptyContainers: NewLedger(),
		producedEmptyContainers: NewLedger(),
	}
}

func (n *ConversionNode) sealed() {}

// ID returns the arena index of the node
func (n *ConversionNode) ID() NodeID { return n.id }

// Substance returns the logical substance the node converts
func (n *ConversionNode) Substance() string { return n.substance }

// InputKey returns the representation requested when the node has to produce
func (n *ConversionNode) InputKey() ResourceKey { return n.inputs[0] }

// OutputKeys returns the representations the node can service
func (n *ConversionNode) OutputKeys() []ResourceKey {
	keys := make([]ResourceKey, len(n.outputs))
	copy(keys, n.outputs)
	return keys
}

// FluidRemainder returns the banked leftover in bulk units
func (n *ConversionNode) FluidRemainder() int { return n.fluidRemainder }

// AddRemainder adjusts the bulk leftover by delta expressed in units of key
func (n *ConversionNode) AddRemainder(key ResourceKey, delta int) int {
	n.fluidRemainder += delta * n.unitsOf(key)
	return n.Remainder(key)
}

// Remainder returns the whole units of key the bulk leftover can cover
func (n *ConversionNode) Remainder(key ResourceKey) int {
	return n.fluidRemainder / n.unitsOf(key)
}

// Remainders returns the bulk leftover under the bulk key
func (n *ConversionNode) Remainders() map[ResourceKey]int {
	if n.fluidRemainder == 0 {
		return map[ResourceKey]int{}
	}
	return map[ResourceKey]int{n.bulkKey: n.fluidRemainder}
}

func (n *ConversionNode) addInput(key ResourceKey, units int) {
	n.inputs = append(n.inputs, key)
	n.setUnits(key, units)
}

func (n *ConversionNode) addOutput(key ResourceKey, units int) {
	n.outputs = append(n.outputs, key)
	n.setUnits(key, units)
}

func (n *ConversionNode) setUnits(key ResourceKey, units int) {
	if units <= 0 {
		units = 1
	}
	n.units[key] = units
}

func (n *ConversionNode) setEmptyContainer(key, empty ResourceKey) {
	n.keyToEmptyContainer[key] = empty
}

func (n *ConversionNode) unitsOf(key ResourceKey) int {
	if units, ok := n.units[key]; ok {
		return units
	}
	return 1
}

// drainBank takes up to need bulk units from the leftover
func (n *ConversionNode) drainBank(need int) int {
	if need <= 0 || n.fluidRemainder <= 0 {
		return 0
	}
	taken := n.fluidRemainder
	if taken > need {
		taken = need
	}
	n.fluidRemainder -= taken
	return taken
}

// drainInput records that count items of an input representation were poured into bulk
func (n *ConversionNode) drainInput(key ResourceKey, count int) int {
	if count <= 0 {
		return 0
	}
	if empty, ok := n.keyToEmptyContainer[key]; ok {
		n.producedEmptyContainers.Adjust(empty, count)
	}
	return count * n.unitsOf(key)
}

// settle turns collected bulk units into at most amount items of key.
// The residue is banked and every filled container consumes one empty.
func (n *ConversionNode) settle(key ResourceKey, collected, amount int) int {
	size := n.unitsOf(key)
	out := collected / size
	if out > amount {
		out = amount
	}
	n.fluidRemainder += collected - out*size
	if empty, ok := n.keyToEmptyContainer[key]; ok && out > 0 {
		n.consumedEmptyContainers.Adjust(empty, out)
	}
	return out
}
