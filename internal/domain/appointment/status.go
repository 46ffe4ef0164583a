package appointment

import "github.com/WilianUno/gestor-autonomo/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCompleted Status = "concluido"
	StatusCancelled Status = "cancelado"
)

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

const ValidStatusList = "pendente, confirmado, concluido, cancelado"

// ===============================
// Transições
// ===============================

// pendente → confirmado | cancelado
// confirmado → concluido | cancelado
// concluido e cancelado são terminais
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition valida uma mudança de status. Manter o mesmo status não é
// uma transição e sempre é permitido.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}

	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}

	return httperr.Validation(
		"Transição de status inválida: " + string(from) + " → " + string(to),
	)
}

// CanCancel define se um agendamento pode ser cancelado. Os dois motivos de
// recusa têm mensagens próprias.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.Validation("Agendamento já está cancelado")
	}
	if current == StatusCompleted {
		return httperr.Validation("Não é possível cancelar um agendamento já concluído")
	}
	return nil
}
