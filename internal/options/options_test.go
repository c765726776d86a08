package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	level   int
	name    string
	applied []string
}

var errBadLevel = errors.New("level out of range")

func withLevel(level int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if level < 0 || level > 9 {
			return errBadLevel
		}
		c.level = level
		c.applied = append(c.applied, "level")

		return nil
	})
}

func withName(name string) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.name = name
		c.applied = append(c.applied, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withName("zstd"), withLevel(3), withName("s2"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.level)
		require.Equal(t, "s2", cfg.name)
		require.Equal(t, []string{"name", "level", "name"}, cfg.applied)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withLevel(42), withName("never"))
		require.ErrorIs(t, err, errBadLevel)
		require.Empty(t, cfg.name)
		require.Empty(t, cfg.applied)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &codecConfig{level: 1}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 1, cfg.level)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg, nil, withLevel(2)))
		require.Equal(t, 2, cfg.level)
	})
}
