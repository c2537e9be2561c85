package picker

import (
	"testing"

	"github.com/peco-labs/gopicker/internal/matcher"
	"github.com/stretchr/testify/require"
)

func TestInjectorPushFeedsMatcher(t *testing.T) {
	m := matcher.New(func(item *string) string { return *item }, matcher.Config{})
	inj := Injector[string]{inner: matcher.NewInjector(m)}

	inj.Push("alpha")
	inj.Push("beta")

	require.Equal(t, 2, m.Len())
}
