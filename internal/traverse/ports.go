package traverse

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/model"
)

// connection is how one kind of port connection is drawn.
type connection struct {
	Label string
	Color diagram.Color
}

var connections = map[model.InstanceKind]connection{
	model.VariableInstance:  {Label: "Sender Receiver", Color: diagram.ColorBlue},
	model.OperationInstance: {Label: "Client Server", Color: diagram.ColorGreen},
	model.ModeInstance:      {Label: "Mode Switch", Color: diagram.ColorOrange},
	model.TriggerInstance:   {Label: "Trigger", Color: diagram.ColorPurple},
}

// connectionOf returns how connections of kind k are drawn.
func connectionOf(k model.InstanceKind) connection {
	return connections[k]
}

// Ports draws, per software component and BSW module with provide ports, the
// provide ports and the require ports connected to them.
func (e *Engine) Ports(ctx context.Context, g *diagram.Graph) error {
	logger := ctxlog.FromContext(ctx)

	var owners []model.Element
	for _, p := range []model.Path{model.PathSwComponents, model.PathBswModules} {
		els, err := e.ix.Query(p)
		if err != nil {
			return fmt.Errorf("list port owners: %w", err)
		}
		owners = append(owners, els...)
	}

	provideStyle := e.views.Style(config.KindProvidePort)
	requireStyle := e.views.Style(config.KindRequirePort)

	for _, owner := range owners {
		ports, err := e.ix.QueryFrom(owner, model.PathOwnProvidePorts)
		if err != nil {
			return err
		}
		if len(ports) == 0 {
			continue
		}
		name := owner.Identity()
		c := g.Cluster(nil, diagram.Key("ports", name), name)

		for _, pp := range ports {
			pn := g.NodeWithID(diagram.Key(name, pp.Identity()), c, diagram.Label(pp, provideStyle.Properties, pp.Identity()), provideStyle)

			for _, kind := range model.InstanceKinds {
				for _, ref := range pp.Children(kind.ConnectedTag()) {
					rp, err := e.resolver.RequirePort(kind, ref.Attr("ref"))
					if err != nil {
						return fmt.Errorf("provide port %q of %q: %w", pp.Identity(), name, err)
					}
					requirer := rp.Owner.Identity()
					rc := g.Cluster(c, diagram.Key("requirer", requirer), requirer)
					rn := g.NodeWithID(
						diagram.Key(requirer, rp.DisplayName()),
						rc,
						diagram.Label(rp.Port, requireStyle.Properties, rp.DisplayName()),
						requireStyle,
					)
					conn := connectionOf(kind)
					g.Connect(pn, rn, c, conn.Label, conn.Color)
					logger.Debug("Port connection.", "provider", pp, "requirer", rp.Port, "kind", conn.Label)
				}
			}
		}
	}
	return nil
}
