package levels

import (
	"fmt"

	"github.com/milk9111/redball/obj"
	"gopkg.in/yaml.v3"
)

// Spec is the YAML schema for one level.
type Spec struct {
	Name    string  `yaml:"name"`
	Spawn   Point   `yaml:"spawn"`
	PanMaxX float64 `yaml:"pan_max_x"`
	Flag    Point   `yaml:"flag"`

	Platforms []PlatformSpec `yaml:"platforms"`
	Movers    []MoverSpec    `yaml:"movers"`
	Coins     []Point        `yaml:"coins"`
	PowerUps  []PowerUpSpec  `yaml:"powerups"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type MoverSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Kind     string  `yaml:"kind"`
	Speed    float64 `yaml:"speed"`
	Distance float64 `yaml:"distance"`
}

type PowerUpSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
}

// LoadSpec loads and parses a level file by name.
func LoadSpec(name string) (*Spec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}

	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *Spec) validate() error {
	if len(s.Platforms) == 0 {
		return fmt.Errorf("level has no platforms")
	}
	if s.PanMaxX <= 0 {
		return fmt.Errorf("pan_max_x must be positive, got %v", s.PanMaxX)
	}
	for i, m := range s.Movers {
		if _, err := motionKind(m.Kind); err != nil {
			return fmt.Errorf("mover %d: %w", i, err)
		}
	}
	for i, p := range s.PowerUps {
		if _, err := powerKind(p.Kind); err != nil {
			return fmt.Errorf("powerup %d: %w", i, err)
		}
	}
	return nil
}

// Build converts the spec into fresh game entities. Every call returns new
// ones, so a session can rebuild a level any number of times.
func (s *Spec) Build() (*obj.LevelData, error) {
	data := &obj.LevelData{
		SpawnX:  s.Spawn.X,
		SpawnY:  s.Spawn.Y,
		PanMaxX: s.PanMaxX,
		Flag:    obj.NewFlag(s.Flag.X, s.Flag.Y),
	}

	for _, p := range s.Platforms {
		data.Platforms = append(data.Platforms, obj.NewPlatform(p.X, p.Y, p.W, p.H))
	}
	for _, m := range s.Movers {
		kind, err := motionKind(m.Kind)
		if err != nil {
			return nil, err
		}
		data.Platforms = append(data.Platforms,
			obj.NewMovingPlatform(m.X, m.Y, m.W, m.H, kind, m.Speed, m.Distance))
	}
	for _, c := range s.Coins {
		data.Coins = append(data.Coins, obj.NewCoin(c.X, c.Y))
	}
	for _, p := range s.PowerUps {
		kind, err := powerKind(p.Kind)
		if err != nil {
			return nil, err
		}
		data.PowerUps = append(data.PowerUps, obj.NewPowerUp(p.X, p.Y, kind))
	}

	return data, nil
}

func motionKind(s string) (obj.MotionKind, error) {
	switch s {
	case "horizontal":
		return obj.MotionHorizontal, nil
	case "vertical":
		return obj.MotionVertical, nil
	case "circular":
		return obj.MotionCircular, nil
	default:
		return obj.MotionNone, fmt.Errorf("unknown motion kind %q", s)
	}
}

func powerKind(s string) (obj.PowerKind, error) {
	switch s {
	case "grow":
		return obj.PowerGrow, nil
	case "shrink":
		return obj.PowerShrink, nil
	default:
		return obj.PowerGrow, fmt.Errorf("unknown powerup kind %q", s)
	}
}
