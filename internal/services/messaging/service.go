package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/cuentasclaras/internal/dice"
	"github.com/KirkDiggler/cuentasclaras/internal/engine"
	"github.com/KirkDiggler/cuentasclaras/internal/missions"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/KirkDiggler/cuentasclaras/internal/money"
	"github.com/KirkDiggler/cuentasclaras/internal/services/game"
)

const bankTurnEnds = "\n\nLuego de pasar por el banco, termina tu turno."

// service implements the Service interface
type service struct {
	roller    dice.Roller
	formatter *money.Formatter
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	s := &service{}
	if config != nil {
		s.roller = config.Roller
		s.formatter = config.Formatter
	}
	if s.roller == nil {
		s.roller = dice.New(nil)
	}
	if s.formatter == nil {
		s.formatter = money.Default()
	}
	return s, nil
}

// GetEventMessage returns the title and body shown after a turn-ending event
func (s *service) GetEventMessage(ctx context.Context, input *GetEventMessageInput) (*GetEventMessageOutput, error) {
	if input == nil || input.Event == nil {
		return nil, errors.New("event is required")
	}

	event := input.Event
	name := input.PlayerName

	switch event.Kind {
	case models.EventKindBank:
		return &GetEventMessageOutput{
			Title:   "Casilla Banco 🏦",
			Message: s.bankMessage(event, name) + bankTurnEnds,
		}, nil
	case models.EventKindMissionSuccess:
		return &GetEventMessageOutput{
			Title: "¡Misión correcta!",
			Message: fmt.Sprintf("¡Bien hecho, %s!\n\nEntregaste %s y se descontaron %s de tu billetera.",
				name, s.formatter.Format(event.Built), s.formatter.Format(event.Charged)),
		}, nil
	case models.EventKindMissionFailure:
		return &GetEventMessageOutput{
			Title: "Misión incorrecta",
			Message: fmt.Sprintf("Entregaste %s, pero la misión pedía %s.\n\nNo se descuenta dinero y pierdes el turno.",
				s.formatter.Format(event.Built), s.formatter.Format(event.Target)),
		}, nil
	case models.EventKindTurnSkipped:
		return &GetEventMessageOutput{
			Title:   "Turno pasado ⏭️",
			Message: fmt.Sprintf("%s pasa el turno sin gastar dinero.", name),
		}, nil
	}

	return nil, fmt.Errorf("unknown event kind %q", event.Kind)
}

// bankMessage describes the nominal bank amount, before flooring at zero
func (s *service) bankMessage(event *models.Event, name string) string {
	amount := event.Charged
	if amount < 0 {
		amount = -amount
	}

	switch event.Reason {
	case models.LedgerReasonBankCommission:
		return fmt.Sprintf("%s paga una comisión bancaria de %s.", name, s.formatter.Format(amount))
	case models.LedgerReasonBankCorrection:
		return fmt.Sprintf("Hubo un error administrativo y el banco abona %s a %s.", s.formatter.Format(amount), name)
	case models.LedgerReasonBankMaintenance:
		return fmt.Sprintf("%s paga un cargo por mantención de %s.", name, s.formatter.Format(amount))
	}

	if event.Amount < 0 {
		return fmt.Sprintf("%s paga %s al banco.", name, s.formatter.Format(-event.Amount))
	}
	return fmt.Sprintf("El banco abona %s a %s.", s.formatter.Format(event.Amount), name)
}

// GetJoinLobbyMessage returns a message for when a player joins a lobby
func (s *service) GetJoinLobbyMessage(ctx context.Context, input *GetJoinLobbyMessageInput) (*GetJoinLobbyMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input is required")
	}

	var messages []string
	if input.AlreadyJoined {
		messages = []string{
			fmt.Sprintf("%s, ya estás en la sala. Espera a que comience la partida.", input.PlayerName),
			fmt.Sprintf("¡Tranquilidad, %s! Ya tienes tu ficha en el tablero.", input.PlayerName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("¡%s se une a la partida! Ya son %d jugadores.", input.PlayerName, input.PlayerCount),
			fmt.Sprintf("Bienvenido, %s. Prepara tu billetera: ya son %d jugadores.", input.PlayerName, input.PlayerCount),
			fmt.Sprintf("%s tomó una ficha. Jugadores en la sala: %d.", input.PlayerName, input.PlayerCount),
		}
	}

	return &GetJoinLobbyMessageOutput{Message: s.pick(messages)}, nil
}

// GetTurnMessage returns the prompt for the active player
func (s *service) GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input is required")
	}

	name := input.PlayerName
	var message string

	switch input.Phase {
	case models.PhaseMoving:
		message = fmt.Sprintf("%s avanza hacia %s %s...", name, input.Place.Emoji(), input.Place.DisplayName())
	case models.PhaseMissionOffered:
		message = fmt.Sprintf("%s cayó en %s %s. Acepta la misión o pide otra.", name, input.Place.Emoji(), input.Place.DisplayName())
	case models.PhaseBuilding:
		message = fmt.Sprintf("%s, arma el monto con monedas y billetes y luego entrégalo.", name)
	default:
		message = s.pick([]string{
			fmt.Sprintf("Es tu turno, %s. ¡Lanza el dado! 🎲", name),
			fmt.Sprintf("%s, el dado te espera 🎲", name),
			fmt.Sprintf("Turno de %s. ¿A qué casilla irás? 🎲", name),
		})
	}

	return &GetTurnMessageOutput{Message: message}, nil
}

// GetTimeUpMessage returns the closing message with the final standings
func (s *service) GetTimeUpMessage(ctx context.Context, input *GetTimeUpMessageInput) (*GetTimeUpMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input is required")
	}

	var b strings.Builder
	b.WriteString("Gana quien invirtió más (quien tiene menos dinero).\n")
	for i, entry := range input.Ranking {
		fmt.Fprintf(&b, "\n%d. **%s** · 💰 %s · ⭐ %d", entry.Rank, entry.PlayerName, s.formatter.Format(entry.Total), entry.Stars)
		if i == 0 {
			b.WriteString(" 🏆")
		}
	}

	return &GetTimeUpMessageOutput{
		Title:   "⏰ ¡Tiempo cumplido!",
		Message: b.String(),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input is required")
	}

	var message string
	err := input.Err
	switch {
	case errors.Is(err, game.ErrNotYourTurn):
		message = "Espera tu turno: ahora le toca a otro jugador."
	case errors.Is(err, game.ErrSessionNotFound):
		message = "No hay una partida en este canal. Usa `/cuentas crear` para abrir una sala."
	case errors.Is(err, game.ErrSessionExists):
		message = "Ya hay una partida en curso en este canal."
	case errors.Is(err, game.ErrLobbyNotFound):
		message = "No hay una sala abierta. Usa `/cuentas crear` para abrir una."
	case errors.Is(err, game.ErrLobbyExists):
		message = "Ya hay una sala abierta en este canal. Usa `/cuentas unirse`."
	case errors.Is(err, game.ErrLobbyFull):
		message = fmt.Sprintf("La sala ya tiene %d jugadores.", engine.MaxPlayers)
	case errors.Is(err, game.ErrNotCreator):
		message = "Solo quien creó la partida puede hacer eso."
	case errors.Is(err, engine.ErrTimeExpired):
		message = "⏰ Se acabó el tiempo. Revisa el ranking final."
	case errors.Is(err, engine.ErrInvalidPhase):
		message = "Esa acción no está disponible en este momento."
	case errors.Is(err, engine.ErrUnknownDenomination):
		message = "Esa moneda o billete no existe."
	case errors.Is(err, missions.ErrNoMissionAvailable):
		message = "No hay misiones para esta casilla. Lanza el dado otra vez o pasa el turno."
	case errors.Is(err, game.ErrInvalidInput):
		message = "Faltan datos para esa acción."
	default:
		message = "Algo salió mal. Inténtalo de nuevo."
	}

	return &GetErrorMessageOutput{Message: message}, nil
}

func (s *service) pick(messages []string) string {
	return messages[dice.Pick(s.roller, len(messages))]
}
