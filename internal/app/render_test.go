package app

import (
	"testing"

	"github.com/indigo-web/urlround/codec"
	"github.com/stretchr/testify/require"
)

func TestRenderBuilder(t *testing.T) {
	t.Run("inputs are echoed escaped", func(t *testing.T) {
		page, err := renderBuilder(New(codec.Raw, `<script>`, ""))
		require.NoError(t, err)
		require.NotContains(t, page, "<script>")
		require.Contains(t, page, "&lt;script&gt;")
	})

	t.Run("no actual result before navigation", func(t *testing.T) {
		page, err := renderBuilder(New(codec.Raw, "a/b", "q"))
		require.NoError(t, err)
		require.Contains(t, page, "No navigation happened yet")
	})

	t.Run("selected mode is checked", func(t *testing.T) {
		page, err := renderBuilder(New(codec.PercentEncoded, "", ""))
		require.NoError(t, err)
		require.Contains(t, page, `value="percent-encoded" checked`)
	})

	t.Run("all samples present", func(t *testing.T) {
		page, err := renderBuilder(New(codec.Raw, "", ""))
		require.NoError(t, err)

		for _, sample := range []string{"fruit", "ごはん", "беседка"} {
			require.Contains(t, page, sample)
		}
	})
}

func TestRenderLanding(t *testing.T) {
	t.Run("broken round-trip", func(t *testing.T) {
		page, err := renderLanding(New(codec.Raw, "a/b", ""), RouterView{})
		require.NoError(t, err)
		require.Contains(t, page, "round-trip broke")
		require.Contains(t, page, "no match")
		require.Contains(t, page, "did not match this")
	})

	t.Run("held round-trip", func(t *testing.T) {
		state := New(codec.PercentEncoded, "a/b", "q")
		page, err := renderLanding(state, RouterView{Matched: true, Segment: "a%2Fb", Query: "q"})
		require.NoError(t, err)
		require.Contains(t, page, "round-trip held")
		require.Contains(t, page, "a%2Fb")
	})
}
