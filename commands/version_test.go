package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Version{}

	assert.Equal(t, "version", v.Name())
	assert.Equal(t, "Prints the dbudgeteer release", v.Description())
	assert.Empty(t, v.Usage())
	assert.NoError(t, v.FlagSet().Parse(nil))
	assert.NoError(t, v.Execute(context.Background(), &Options{}))
}
