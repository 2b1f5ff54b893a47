package gov

type Network struct {
	Name        string `json:"name" yaml:"name"`
	SubgraphID  string `json:"subgraph_id" yaml:"subgraph_id"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}
