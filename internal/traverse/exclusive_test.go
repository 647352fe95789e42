package traverse

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/resolve"
	"github.com/specialistvlad/rtegraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusiveAreas(t *testing.T) {
	e := newEngine(t, testutil.ScenarioModel)
	g := diagram.New("areas")
	require.NoError(t, e.ExclusiveAreas(context.Background(), g))

	ea1 := diagram.Key("exclusive_area", "C1", "Data")
	ea2 := diagram.Key("exclusive_area", "CanIf", "Buffer")
	require.Equal(t, []string{ea1, ea2}, clusterIDs(g.Clusters()))

	t.Run("optimized area", func(t *testing.T) {
		c := g.Clusters()[0]
		assert.Equal(t, "C1 - Data", c.Label)

		area, ok := g.Lookup(ea1)
		require.True(t, ok)
		assert.Equal(t, diagram.ColorOrange, area.Color)
		assert.Equal(t, "Exclusive Area: Data", area.Label)

		reason, ok := g.Lookup(diagram.Key("reason", ea1))
		require.True(t, ok)
		assert.Equal(t, "single core", reason.Label)

		want := []edgeView{
			{From: ea1, To: diagram.Key("reason", ea1)},
			{From: "C1_Init", To: "T2", Label: "Event:E3"},
			{From: "C1_Init", To: "C1_Main"},
			{From: "C1_Main", To: ea1, Label: LabelRunsInside},
			{From: "CanIf_MainFunction", To: "T1", Label: "Event:E2"},
			{From: "CanIf_MainFunction", To: ea1, Label: LabelCanEnter},
		}
		if diff := cmp.Diff(want, edgesOf(c)); diff != "" {
			t.Errorf("edges mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("plain area reuses nodes but re-expands executables", func(t *testing.T) {
		c := g.Clusters()[1]
		assert.Equal(t, "CanIf - Buffer", c.Label)

		area, ok := g.Lookup(ea2)
		require.True(t, ok)
		assert.Equal(t, diagram.ColorYellow, area.Color)
		_, ok = g.Lookup(diagram.Key("reason", ea2))
		assert.False(t, ok)

		assert.Equal(t, []string{ea2}, nodeIDs(c))
		want := []edgeView{
			{From: "CanIf_MainFunction", To: "T1", Label: "Event:E2"},
			{From: "CanIf_MainFunction", To: ea2, Label: LabelRunsInside},
		}
		if diff := cmp.Diff(want, edgesOf(c)); diff != "" {
			t.Errorf("edges mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestExclusiveAreaCallers(t *testing.T) {
	const doc = `<RteModel>
  <Partitions>
    <Partition name="P1" coreId="0">
      <Tasks><Task name="T1"/></Tasks>
      <SwComponents>
        <SwComponent name="C1">
          <Runnables>
            <Runnable id="Leaf"><DirectCallers><Caller ref="Mid"/><Caller ref="Root"/></DirectCallers></Runnable>
            <Runnable id="Mid"><DirectCallers><Caller ref="Root"/></DirectCallers></Runnable>
            <Runnable id="Root"/>
            <Runnable id="Lonely"/>
          </Runnables>
          <ExclusiveAreas>
            <ExclusiveArea name="EA">
              <RunsInside ref="Leaf"/>
              <CanEnter ref="Lonely"/>
            </ExclusiveArea>
          </ExclusiveAreas>
        </SwComponent>
      </SwComponents>
    </Partition>
  </Partitions>
  <Events>
    <Event name="E1"><TaskEventMapping eventName="E1" executableRef="Root" mappedToTask="true" taskName="T1"/></Event>
    <Event name="E2"><TaskEventMapping eventName="E2" executableRef="Root" mappedToTask="false"/></Event>
  </Events>
</RteModel>`

	e := newEngine(t, doc)
	g := diagram.New("areas")
	require.NoError(t, e.ExclusiveAreas(context.Background(), g))
	require.Len(t, g.Clusters(), 1)
	c := g.Clusters()[0]
	area := c.ID
	unknown := diagram.Key("unknown_task", area)

	// Root is reached twice but expanded once: its two mapping edges appear once.
	want := []edgeView{
		{From: "Root", To: "T1", Label: "Event:E1"},
		{From: "Root", To: unknown, Label: "Event:E2"},
		{From: "Root", To: "Mid"},
		{From: "Mid", To: "Leaf"},
		{From: "Root", To: "Leaf"},
		{From: "Leaf", To: area, Label: LabelRunsInside},
		{From: "Lonely", To: unknown},
		{From: "Lonely", To: area, Label: LabelCanEnter},
	}
	if diff := cmp.Diff(want, edgesOf(c)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}

	n, ok := g.Lookup(unknown)
	require.True(t, ok)
	assert.Equal(t, UnknownTaskLabel, n.Label)
}

func TestExclusiveAreaWithoutCallersOrMappings(t *testing.T) {
	const doc = `<RteModel><SwComponent name="C1">
  <Runnables><Runnable id="R1"/></Runnables>
  <ExclusiveAreas><ExclusiveArea name="EA"><RunsInside ref="R1"/></ExclusiveArea></ExclusiveAreas>
</SwComponent></RteModel>`

	e := newEngine(t, doc)
	g := diagram.New("areas")
	require.NoError(t, e.ExclusiveAreas(context.Background(), g))

	c := g.Clusters()[0]
	assert.Equal(t, "C1 - EA", c.Label)
	assert.Equal(t, []string{c.ID, "R1", diagram.Key("unknown_task", c.ID)}, nodeIDs(c))
	assert.Len(t, c.Edges(), 2)
}

func TestExclusiveAreasFaults(t *testing.T) {
	t.Run("caller cycle", func(t *testing.T) {
		e := newEngine(t, testutil.CallerCycleModel)
		g := diagram.New("areas")
		err := e.ExclusiveAreas(context.Background(), g)
		require.Error(t, err)
		assert.ErrorIs(t, err, resolve.ErrIntegrity)
		assert.True(t, g.Empty(), "nothing is drawn before the cycle check")
	})

	t.Run("unknown member", func(t *testing.T) {
		e := newEngine(t, `<RteModel><SwComponent name="C1">
  <ExclusiveAreas><ExclusiveArea name="EA"><CanEnter ref="Ghost"/></ExclusiveArea></ExclusiveAreas>
</SwComponent></RteModel>`)
		err := e.ExclusiveAreas(context.Background(), diagram.New("areas"))
		require.Error(t, err)
		assert.ErrorIs(t, err, resolve.ErrIntegrity)
		assert.Contains(t, err.Error(), "C1 - EA")
	})
}

func TestAreasAndSingleArea(t *testing.T) {
	e := newEngine(t, testutil.ScenarioModel)
	areas, err := e.Areas(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "C1 - Data", e.AreaName(areas[0]))
	assert.Equal(t, "CanIf - Buffer", e.AreaName(areas[1]))

	g := diagram.New("one")
	require.NoError(t, e.ExclusiveArea(context.Background(), g, areas[1]))
	require.Len(t, g.Clusters(), 1)
	assert.Equal(t, []string{diagram.Key("exclusive_area", "CanIf", "Buffer"), "CanIf_MainFunction", "T1"}, nodeIDs(g.Clusters()[0]))
}
