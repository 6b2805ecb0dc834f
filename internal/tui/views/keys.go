package views

import (
	"github.com/alexisbeaulieu97/statedemo/internal/container/provider"
	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
)

const contextVariant = provider.Name

type opBinding struct {
	key   string
	label string
}

func bindingFor(op appstate.Operation) opBinding {
	switch op {
	case appstate.OpIncrement:
		return opBinding{key: "+", label: "Increment"}
	case appstate.OpDecrement:
		return opBinding{key: "-", label: "Decrement"}
	case appstate.OpReset:
		return opBinding{key: "r", label: "Reset"}
	case appstate.OpToggleTheme:
		return opBinding{key: "t", label: "Toggle Theme"}
	default:
		return opBinding{key: "?", label: op.String()}
	}
}
