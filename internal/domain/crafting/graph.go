package crafting

// Graph is the resolution graph for one refresh.
// It is built from the pinned entries, resolved once and then dropped.
type Graph struct {
	model       ItemModel
	conversions ConversionCatalog

	arena    []Node
	nodes    map[ResourceKey]NodeID
	allNodes map[ResourceKey][]NodeID

	requestedItems Ledger
	requestOrder   []ResourceKey

	itemStackMapping map[ResourceKey]Stack
	conflictingSlots map[SlotID]bool

	// resourceSlots keeps every slot attached to a resource node, in pin order
	resourceSlots map[NodeID][]PinnedEntry
}

// NewGraph creates an empty resolution graph
func NewGraph(model ItemModel, conversions ConversionCatalog) *Graph {
	return &Graph{
		model:            model,
		conversions:      conversions,
		arena:            make([]Node, 0),
		nodes:            make(map[ResourceKey]NodeID),
		allNodes:         make(map[ResourceKey][]NodeID),
		requestedItems:   NewLedger(),
		requestOrder:     make([]ResourceKey, 0),
		itemStackMapping: make(map[ResourceKey]Stack),
		conflictingSlots: make(map[SlotID]bool),
		resourceSlots:    make(map[NodeID][]PinnedEntry),
	}
}

// Node returns the node stored at id
func (g *Graph) Node(id NodeID) Node {
	return g.arena[id]
}

// NodeFor returns the active node registered under key
func (g *Graph) NodeFor(key ResourceKey) (Node, bool) {
	id, ok := g.nodes[key]
	if !ok {
		return nil, false
	}
	return g.arena[id], true
}

// Nodes returns every node in insertion order
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, len(g.arena))
	copy(nodes, g.arena)
	return nodes
}

// AddProduction registers a production rule with its pinned inputs and outputs
// under every output key
func (g *Graph) AddProduction(recipe Recipe, inputs, outputs []PinnedEntry) *ProductionNode {
	node := newProductionNode(NodeID(len(g.arena)), g.model, recipe, inputs, outputs)
	g.arena = append(g.arena, node)

	for _, output := range node.outputs {
		g.addNode(output.key, output.slot, node)
		g.request(output.key, output.entry.Meta.RequestedAmount)
	}

	for _, key := range node.OutputKeys() {
		g.allNodes[key] = append(g.allNodes[key], node.id)
	}

	return node
}

// AddResource registers a pinned entry that no recipe backs.
// Entries sharing a key attach to the same resource node.
func (g *Graph) AddResource(entry PinnedEntry) Node {
	key := g.model.Key(entry.Stack)
	g.request(key, entry.Meta.RequestedAmount)

	if id, ok := g.nodes[key]; ok {
		if existing, isResource := g.arena[id].(*ResourceNode); isResource {
			g.resourceSlots[id] = append(g.resourceSlots[id], entry)
			return existing
		}
	}

	node := newResourceNode(NodeID(len(g.arena)), key, entry)
	g.arena = append(g.arena, node)
	g.resourceSlots[node.id] = []PinnedEntry{entry}
	g.addNode(key, entry.Slot, node)
	return node
}

// addNode stores node as the active node of key. An existing production node is
// never replaced; the incoming slot is flagged as conflicting instead.
func (g *Graph) addNode(key ResourceKey, slot SlotID, node Node) {
	if id, ok := g.nodes[key]; ok && id != node.ID() {
		if _, isProduction := g.arena[id].(*ProductionNode); isProduction {
			g.conflictingSlots[slot] = true
			return
		}
	}
	g.nodes[key] = node.ID()
}

func (g *Graph) request(key ResourceKey, amount int) {
	if amount == 0 {
		return
	}
	if !containsKey(g.requestOrder, key) {
		g.requestOrder = append(g.requestOrder, key)
	}
	g.requestedItems.Adjust(key, amount)
}

// Requested returns the signed net demand of key
func (g *Graph) Requested(key ResourceKey) int {
	return g.requestedItems.Get(key)
}

func (g *Graph) mapStack(key ResourceKey, stack Stack) {
	if _, exists := g.itemStackMapping[key]; exists {
		return
	}
	g.itemStackMapping[key] = stack
}

// Preprocess builds the stack mapping and derives conversion nodes
func (g *Graph) Preprocess() {
	for _, node := range g.arena {
		switch n := node.(type) {
		case *ProductionNode:
			for _, slot := range n.outputs {
				g.mapStack(slot.key, slot.entry.Stack)
			}
			for _, slot := range n.inputs {
				g.mapStack(slot.key, slot.entry.Stack)
			}
			for _, key := range n.stackOrder {
				g.mapStack(key, n.recipeStacks[key])
			}
		case *ResourceNode:
			g.mapStack(n.key, n.entry.Stack)
		case *ConversionNode:
		}
	}

	g.buildConversions()
}

// substanceSide collects, per substance, the representations seen on one side of the pinned recipes
type substanceSide struct {
	order []string
	keys  map[string][]ResourceKey
	units map[ResourceKey]int
	stack map[ResourceKey]Stack
}

func newSubstanceSide() *substanceSide {
	return &substanceSide{
		order: make([]string, 0),
		keys:  make(map[string][]ResourceKey),
		units: make(map[ResourceKey]int),
		stack: make(map[ResourceKey]Stack),
	}
}

func (s *substanceSide) add(substance string, key ResourceKey, units int, stack Stack) {
	if _, seen := s.keys[substance]; !seen {
		s.order = append(s.order, substance)
	}
	if containsKey(s.keys[substance], key) {
		return
	}
	s.keys[substance] = append(s.keys[substance], key)
	s.units[key] = units
	s.stack[key] = stack
}

func (g *Graph) buildConversions() {
	if g.conversions == nil {
		return
	}

	producers := newSubstanceSide()
	consumers := newSubstanceSide()

	for _, node := range g.arena {
		production, ok := node.(*ProductionNode)
		if !ok {
			continue
		}
		for _, slot := range production.outputs {
			if substance, bulk := g.conversions.Substance(slot.entry.Stack); bulk {
				producers.add(substance, slot.key, g.conversions.UnitsPerItem(slot.entry.Stack), slot.entry.Stack)
			}
		}
		for _, slot := range production.inputs {
			if substance, bulk := g.conversions.Substance(slot.entry.Stack); bulk {
				consumers.add(substance, slot.key, g.conversions.UnitsPerItem(slot.entry.Stack), slot.entry.Stack)
			}
		}
	}

	for _, substance := range producers.order {
		consumed, ok := consumers.keys[substance]
		if !ok {
			continue
		}

		produced := producers.keys[substance]
		outputs := make([]ResourceKey, 0, len(consumed))
		for _, key := range consumed {
			if !containsKey(produced, key) {
				outputs = append(outputs, key)
			}
		}
		if len(produced) == 0 || len(outputs) == 0 {
			continue
		}

		bulkStack := g.conversions.BulkStack(substance)
		bulkKey := g.model.Key(bulkStack)
		g.mapStack(bulkKey, bulkStack)

		node := newConversionNode(NodeID(len(g.arena)), substance, bulkKey)
		for _, key := range produced {
			node.addInput(key, producers.units[key])
			g.trackEmptyContainer(node, key, producers.stack[key])
		}
		for _, key := range outputs {
			node.addOutput(key, consumers.units[key])
			g.trackEmptyContainer(node, key, consumers.stack[key])
		}
		g.arena = append(g.arena, node)

		for _, key := range outputs {
			if _, exists := g.nodes[key]; !exists {
				g.nodes[key] = node.id
			}
			g.allNodes[key] = append(g.allNodes[key], node.id)
		}
		// Producers of an input representation can also be served from the bulk leftover
		for _, key := range produced {
			g.allNodes[key] = append(g.allNodes[key], node.id)
		}
	}
}

func (g *Graph) trackEmptyContainer(node *ConversionNode, key ResourceKey, stack Stack) {
	empty, ok := g.conversions.EmptyContainer(stack)
	if !ok {
		return
	}
	emptyKey := g.model.Key(empty)
	g.mapStack(emptyKey, empty)
	node.setEmptyContainer(key, emptyKey)
}

func containsKey(keys []ResourceKey, key ResourceKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
