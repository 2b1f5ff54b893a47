package networks

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/citizenwallet/govdash/internal/storage"
	"github.com/citizenwallet/govdash/pkg/gov"
	"gopkg.in/yaml.v3"
)

const DefaultGateway = "https://gateway.thegraph.com"

// builtin is the table shipped with the dashboard. A networks file can add
// entries or override these.
var builtin = []gov.Network{
	{
		Name:       "injective",
		SubgraphID: "2aYHh1GtHqHTU782VMxg5Hzpzsc4q4WdxniKW7MAvBBj",
	},
}

type file struct {
	Networks []gov.Network `yaml:"networks"`
}

type Table struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]gov.Network
}

// New returns a table holding the built-in networks followed by the given ones.
func New(extra ...gov.Network) *Table {
	t := &Table{
		byKey: map[string]gov.Network{},
	}

	for _, n := range builtin {
		t.add(n)
	}

	for _, n := range extra {
		t.add(n)
	}

	return t
}

// Load builds a table from the built-in networks and the YAML file at path, if any.
func Load(path string) (*Table, error) {
	if path == "" {
		return New(), nil
	}

	path = storage.ExpandHome(path)

	if !storage.Exists(path) {
		return nil, fmt.Errorf("networks file not found: %s", path)
	}

	b, err := storage.Read(path)
	if err != nil {
		return nil, err
	}

	return Parse(b)
}

func Parse(b []byte) (*Table, error) {
	var f file
	err := yaml.Unmarshal(b, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse networks file: %w", err)
	}

	for i, n := range f.Networks {
		if n.Name == "" || n.SubgraphID == "" {
			return nil, fmt.Errorf("network %d: name and subgraph_id are required", i)
		}
	}

	return New(f.Networks...), nil
}

func (t *Table) add(n gov.Network) {
	n.Name = strings.ToLower(strings.TrimSpace(n.Name))

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byKey[n.Name]; !ok {
		t.order = append(t.order, n.Name)
	}

	t.byKey[n.Name] = n
}

// Lookup returns the network registered under name.
func (t *Table) Lookup(name string) (gov.Network, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.byKey[strings.ToLower(name)]
	if !ok {
		return gov.Network{}, fmt.Errorf("%w: %q", gov.ErrUnknownNetwork, name)
	}

	return n, nil
}

// All returns the networks in registration order.
func (t *Table) All() []gov.Network {
	t.mu.RLock()
	defer t.mu.RUnlock()

	all := make([]gov.Network, 0, len(t.order))
	for _, name := range t.order {
		all = append(all, t.byKey[name])
	}

	return all
}

// Default is the network the root page redirects to.
func (t *Table) Default() gov.Network {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.byKey[t.order[0]]
}

// Endpoint returns the gateway URL of a network's subgraph.
func Endpoint(gateway, apiKey string, n gov.Network) string {
	if gateway == "" {
		gateway = DefaultGateway
	}

	return fmt.Sprintf("%s/api/%s/subgraphs/id/%s", strings.TrimSuffix(gateway, "/"), apiKey, n.SubgraphID)
}

// DisplayName is the human readable name of a network.
func DisplayName(n gov.Network) string {
	if n.DisplayName != "" {
		return n.DisplayName
	}

	return FormattedNetworkName(n.Name)
}

// FormattedNetworkName turns a slug like "cosmos-hub" into "Cosmos Hub".
func FormattedNetworkName(network string) string {
	words := strings.Split(network, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}

	return strings.Join(words, " ")
}
