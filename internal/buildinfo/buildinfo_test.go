package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setVersion(t *testing.T, v string) {
	t.Helper()
	old := Version
	Version = v
	t.Cleanup(func() { Version = old })
}

func TestCheckConstraint(t *testing.T) {
	t.Run("satisfied constraint passes", func(t *testing.T) {
		setVersion(t, "1.4.2")
		assert.NoError(t, CheckConstraint(">= 1.2, < 2.0"))
	})

	t.Run("unsatisfied constraint fails", func(t *testing.T) {
		setVersion(t, "1.4.2")
		err := CheckConstraint(">= 2.0")
		assert.ErrorContains(t, err, "does not satisfy required_version")
	})

	t.Run("dev builds check by their core version", func(t *testing.T) {
		setVersion(t, "1.4.0-dev")
		assert.NoError(t, CheckConstraint(">= 1.4"))
	})

	t.Run("bad constraint expression", func(t *testing.T) {
		setVersion(t, "1.0.0")
		err := CheckConstraint("not-a-constraint")
		assert.ErrorContains(t, err, "parsing version constraint")
	})

	t.Run("bad build version", func(t *testing.T) {
		setVersion(t, "garbage")
		err := CheckConstraint(">= 1.0")
		assert.ErrorContains(t, err, "parsing build version")
	})
}
