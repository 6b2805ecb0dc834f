package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
)

func TestContainerAppliesEveryOperation(t *testing.T) {
	c := Configure().Container()
	require.Equal(t, Name, c.Name())
	require.Equal(t, appstate.InitialSnapshot(), c.Snapshot())

	for _, op := range appstate.Operations() {
		require.True(t, c.Supports(op), op)
	}

	require.True(t, c.Apply(appstate.OpIncrement))
	require.True(t, c.Apply(appstate.OpToggleTheme))
	require.Equal(t, appstate.Snapshot{Count: 1, Theme: appstate.ThemeDark}, c.Snapshot())

	require.True(t, c.Apply(appstate.OpReset))
	require.Zero(t, c.Snapshot().Count)

	require.False(t, c.Apply(appstate.Operation("square")))
	require.Equal(t, appstate.Snapshot{Count: 0, Theme: appstate.ThemeDark}, c.Store().GetState().Snapshot())
}

func TestContainerFieldSubscriptions(t *testing.T) {
	c := Configure().Container()
	var countSeen, themeSeen []appstate.Snapshot
	unsub := c.Subscribe(appstate.FieldCount, func(s appstate.Snapshot) { countSeen = append(countSeen, s) })
	c.Subscribe(appstate.FieldTheme, func(s appstate.Snapshot) { themeSeen = append(themeSeen, s) })

	c.Apply(appstate.OpIncrement)
	c.Apply(appstate.OpToggleTheme)
	c.Apply(appstate.OpReset)
	c.Apply(appstate.OpReset)

	require.Equal(t, []appstate.Snapshot{
		{Count: 1, Theme: appstate.ThemeLight},
		{Count: 0, Theme: appstate.ThemeDark},
	}, countSeen)
	require.Equal(t, []appstate.Snapshot{{Count: 1, Theme: appstate.ThemeDark}}, themeSeen)

	unsub()
	c.Apply(appstate.OpIncrement)
	require.Len(t, countSeen, 2)
}
