//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartupListsSeedCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	for _, name := range []string{"Holoholo", "Garden Tool Set", "Laptop Pro", "Sort: Name"} {
		require.True(t, tf.SeePlain(name), "Should show %q", name)
	}
}

func TestSuggestionsAppearAfterTypingPauses(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Laptop Pro"))

	mark := tf.Mark()
	require.NoError(t, tf.Search("lap"))

	err := tf.WaitForE(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		if mark > len(plain) {
			mark = 0
		}
		return strings.Contains(plain[mark:], "lap deals")
	}, 3*time.Second, "suggestions never appeared")
	require.NoError(t, err)
	require.True(t, tf.SeePlainAfter(mark, "• Laptop Pro"), "product suggestions should be listed")
}

func TestChoosingProductSuggestion(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("lap"))
	require.True(t, tf.SeePlain("lap deals"), "suggestions should appear")

	// Focus the dropdown and walk down to the Laptop Pro product
	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyTab))
	for i := 0; i < 4; i++ {
		require.NoError(t, tf.SendKeys("\x1b[B"))
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlainAfter(mark, "[Search: Laptop Pro]"), "choosing should search for the product")
}

func TestSubmittingSearchFiltersList(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	mark := tf.Mark()
	require.NoError(t, tf.Search("shoes"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlainAfter(mark, `1 results for "shoes"`), "status should report the result count")
	require.True(t, tf.SeePlainAfter(mark, "[Search: shoes]"), "title should show the applied search")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.SendKeys("\x15")) // ctrl+u clears the line
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlainAfter(mark, "Search cleared"))
}

func TestCustomCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	catalogPath, err := tf.CreateTestCatalog("beach", AsYAML())
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-catalog", catalogPath), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Surfboard"), "Should list catalog products")
	require.True(t, tf.SeePlain("Ukulele"))

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyCategory))
	require.True(t, tf.SeePlainAfter(mark, "[Music]"), "category cycling should start at the first category")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeySort))
	require.True(t, tf.SeePlainAfter(mark, "Sort: Price: Low to High"))
}

func TestBrokenCatalogExits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-catalog", "/nonexistent/catalog.toml"), "Failed to start app")
	require.True(t, tf.SeePlain("Error loading catalog"), "Should report the catalog error")
	require.Error(t, tf.WaitExit(2*time.Second), "app should exit with a failure status")
}

func TestEscapeLeavesSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("lap"))
	require.True(t, tf.SeePlain("lap deals"), "suggestions should appear")

	// Escape cancels the edit; the list is not filtered
	mark := tf.Mark()
	require.NoError(t, tf.Escape())
	require.True(t, tf.SeePlainAfter(mark, "Garden Tool Set"), "unfiltered list should be redrawn")
	require.False(t, tf.SeePlainAfter(tf.Mark(), "[Search: lap]"), "escape must not apply the search")
}
