package levels

import (
	"fmt"

	"github.com/milk9111/redball/obj"
)

// Provider serves the bundled levels to a session, implementing
// obj.Provider. Level files are named level<N>.yaml with N starting at 1.
type Provider struct {
	maxLevel int
}

func NewProvider() *Provider {
	return &Provider{maxLevel: len(Names())}
}

func (p *Provider) MaxLevel() int { return p.maxLevel }

// Level loads and builds level files fresh on every call.
func (p *Provider) Level(index int) (*obj.LevelData, error) {
	if index < 1 || index > p.maxLevel {
		return nil, fmt.Errorf("levels: index %d out of range [1, %d]", index, p.maxLevel)
	}
	spec, err := LoadSpec(FileName(index))
	if err != nil {
		return nil, err
	}
	return spec.Build()
}

// FileName returns the level file name for an index.
func FileName(index int) string {
	return fmt.Sprintf("level%d.yaml", index)
}
