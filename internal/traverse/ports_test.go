package traverse

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/model"
	"github.com/specialistvlad/rtegraph/internal/resolve"
	"github.com/specialistvlad/rtegraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortsSingleConnection(t *testing.T) {
	const doc = `<RteModel><Partitions><Partition name="P1" coreId="0"><SwComponents>
  <SwComponent name="C1">
    <ProvidePorts><ProvidePort name="PP1"><ConnectedVariableInstance ref="V9"/></ProvidePort></ProvidePorts>
  </SwComponent>
  <SwComponent name="C2">
    <RequirePorts><RequirePort name="RP1"><VariableInstance id="V9"/></RequirePort></RequirePorts>
  </SwComponent>
</SwComponents></Partition></Partitions></RteModel>`

	e := newEngine(t, doc)
	g := diagram.New("ports")
	require.NoError(t, e.Ports(context.Background(), g))

	require.Equal(t, 1, g.EdgeCount())
	require.Len(t, g.Clusters(), 1)
	c := g.Clusters()[0]
	assert.Equal(t, "C1", c.Label)

	want := []edgeView{{From: diagram.Key("C1", "PP1"), To: diagram.Key("C2", "RP1"), Label: "Sender Receiver"}}
	if diff := cmp.Diff(want, edgesOf(c)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}

	pp, ok := g.Lookup(diagram.Key("C1", "PP1"))
	require.True(t, ok)
	assert.Equal(t, "Provide Port: PP1", pp.Label)
	assert.Equal(t, diagram.ColorGreen, pp.Color)

	rp, ok := g.Lookup(diagram.Key("C2", "RP1"))
	require.True(t, ok)
	assert.Equal(t, "Require Port: RP1", rp.Label)
	require.Len(t, c.Clusters(), 1)
	assert.Equal(t, "C2", c.Clusters()[0].Label)
	assert.Equal(t, []string{diagram.Key("C2", "RP1")}, nodeIDs(c.Clusters()[0]), "require port sits in its requirer cluster")
}

func TestPortsScenarioModel(t *testing.T) {
	e := newEngine(t, testutil.ScenarioModel)
	g := diagram.New("ports")
	require.NoError(t, e.Ports(context.Background(), g))

	require.Equal(t, []string{diagram.Key("ports", "C1"), diagram.Key("ports", "CanIf")}, clusterIDs(g.Clusters()))

	c1 := g.Clusters()[0]
	want := []edgeView{
		{From: "C1/PP1", To: "C2/RP1", Label: "Sender Receiver"},
		{From: "C1/PP2", To: "C2/RP2", Label: "Client Server"},
		{From: "C1/PP2", To: "CanIf/CanIf_Mode", Label: "Mode Switch"},
	}
	if diff := cmp.Diff(want, edgesOf(c1)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{diagram.Key("requirer", "C2"), diagram.Key("requirer", "CanIf")}, clusterIDs(c1.Clusters()))

	unnamed, ok := g.Lookup("C2/RP2")
	require.True(t, ok)
	assert.Equal(t, "RP2", unnamed.Label, "unnamed require port falls back to its id")

	canIf := g.Clusters()[1]
	want = []edgeView{{From: "CanIf/CanIf_Trigger", To: "C3/RP4", Label: "Trigger"}}
	if diff := cmp.Diff(want, edgesOf(canIf)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, diagram.ColorPurple, canIf.Edges()[0].Color)
}

func TestPortsUnresolvedInstance(t *testing.T) {
	e := newEngine(t, `<RteModel><SwComponents><SwComponent name="C1">
  <ProvidePorts><ProvidePort name="PP1"><ConnectedModeInstance ref="M404"/></ProvidePort></ProvidePorts>
</SwComponent></SwComponents></RteModel>`)
	err := e.Ports(context.Background(), diagram.New("ports"))
	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrIntegrity)
	assert.Contains(t, err.Error(), "M404")
}

func TestConnectionOf(t *testing.T) {
	tests := []struct {
		kind model.InstanceKind
		want connection
	}{
		{kind: model.VariableInstance, want: connection{Label: "Sender Receiver", Color: diagram.ColorBlue}},
		{kind: model.OperationInstance, want: connection{Label: "Client Server", Color: diagram.ColorGreen}},
		{kind: model.ModeInstance, want: connection{Label: "Mode Switch", Color: diagram.ColorOrange}},
		{kind: model.TriggerInstance, want: connection{Label: "Trigger", Color: diagram.ColorPurple}},
	}
	for _, tt := range tests {
		t.Run(tt.want.Label, func(t *testing.T) {
			assert.Equal(t, tt.want, connectionOf(tt.kind))
		})
	}
}
