package funnel

import (
	"errors"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

// Step names one screen of the funnel. Values double as the client-side
// route names.
type Step string

const (
	StepLanding  Step = "/"
	StepCatalog  Step = "/catalogo"
	StepProduct  Step = "/product"
	StepCart     Step = "/carrinho"
	StepAddress  Step = "/endereco"
	StepCPF      Step = "/cpf"
	StepAnalysis Step = "/analise"
	StepResult   Step = "/resultado"
	StepAgent    Step = "/aguardando"
	StepChat     Step = "/chat"
	StepPayment  Step = "/pagamento"
)

var ErrUnknownStep = errors.New("unknown funnel step")

// Steps is the funnel in walking order.
var Steps = []Step{
	StepLanding, StepCatalog, StepProduct, StepCart, StepAddress,
	StepCPF, StepAnalysis, StepResult, StepAgent, StepChat, StepPayment,
}

// ParseStep resolves a route name to a Step.
func ParseStep(route string) (Step, error) {
	for _, s := range Steps {
		if string(s) == route {
			return s, nil
		}
	}
	return "", ErrUnknownStep
}

// Guard decides whether a session may enter a step. When state required by
// the step is missing, it returns the earliest step that would populate it,
// so deep links into the middle of the funnel bounce back instead of
// rendering with undefined data.
func Guard(step Step, state *session.State) (bool, Step) {
	hasSelection := state != nil && state.Selection != nil
	hasCPF := state != nil && state.CPF != ""
	hasIdentity := state != nil && state.Identity != nil
	hasPhone := state != nil && state.Phone != ""

	switch step {
	case StepLanding, StepCatalog, StepProduct:
		return true, ""
	case StepCart, StepAddress:
		if !hasSelection {
			return false, StepCatalog
		}
		return true, ""
	case StepCPF:
		if !hasSelection {
			return false, StepCatalog
		}
		return true, ""
	case StepAnalysis:
		if !hasSelection {
			return false, StepCatalog
		}
		if !hasCPF {
			return false, StepCPF
		}
		return true, ""
	case StepResult:
		if !hasSelection {
			return false, StepCatalog
		}
		if !hasCPF || !hasIdentity {
			return false, StepCPF
		}
		return true, ""
	case StepAgent:
		if !hasCPF {
			return false, StepCPF
		}
		if !hasPhone {
			return false, StepResult
		}
		return true, ""
	case StepChat:
		if !hasCPF {
			return false, StepCPF
		}
		return true, ""
	case StepPayment:
		if !hasSelection {
			return false, StepCatalog
		}
		if !hasCPF {
			return false, StepCPF
		}
		return true, ""
	}
	return false, StepLanding
}
