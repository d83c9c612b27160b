package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/cuentasclaras/internal/board"
	"github.com/KirkDiggler/cuentasclaras/internal/denomination"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/KirkDiggler/cuentasclaras/internal/money"
	"github.com/KirkDiggler/cuentasclaras/internal/wallet"
	"github.com/bwmarrin/discordgo"
)

const (
	colorActive  = 0x34d399
	colorDanger  = 0xef4444
	colorLobby   = 0x60a5fa
	colorExpired = 0x94a3b8
)

// Button IDs
const (
	ButtonJoin    = "join"
	ButtonBegin   = "begin"
	ButtonRoll    = "roll"
	ButtonAccept  = "accept"
	ButtonAnother = "another"
	ButtonClear   = "clear"
	ButtonSubmit  = "submit"
	ButtonSkip    = "skip"

	// Denomination buttons carry the key after the prefix
	buttonAddPrefix    = "add:"
	buttonRemovePrefix = "remove:"
)

// Discord allows five buttons per row
const buttonsPerRow = 5

// tokens mark players on the grid in turn order
var tokens = []string{"🔴", "🔵", "🟢", "🟡"}

const (
	emptyCell  = "⬛"
	bankCell   = "🏦"
	sharedCell = "👥"
)

// notice is a titled message shown above the board
type notice struct {
	Title   string
	Message string
}

// boardView is everything the board message shows
type boardView struct {
	Session *models.Session

	// Notice is the last event, a landing problem or the final result
	Notice *notice

	// Prompt tells the active player what to do next
	Prompt string
}

// renderer turns snapshots into Discord messages
type renderer struct {
	board         *board.Topology
	denominations *denomination.Catalog
	formatter     *money.Formatter
}

func token(index int) string {
	return tokens[index%len(tokens)]
}

// formatClock renders seconds as mm:ss
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// grid draws the track with player tokens; square boards get the bank in the middle
func (r *renderer) grid(snap *models.Session) string {
	occupants := make(map[int][]int)
	for i, p := range snap.Players {
		pos := r.board.Normalize(p.Position)
		occupants[pos] = append(occupants[pos], i)
	}

	cell := func(pos int) string {
		switch players := occupants[pos]; len(players) {
		case 0:
			return r.board.PlaceAt(pos).Emoji()
		case 1:
			return token(players[0])
		default:
			return sharedCell
		}
	}

	side := r.board.GridSide()
	if side == 0 {
		var b strings.Builder
		for pos := 0; pos < r.board.Size(); pos++ {
			b.WriteString(cell(pos))
		}
		return b.String()
	}

	rows := make([][]string, side)
	for row := range rows {
		rows[row] = make([]string, side)
		for col := range rows[row] {
			rows[row][col] = emptyCell
			if isCenter(row, side) && isCenter(col, side) {
				rows[row][col] = bankCell
			}
		}
	}
	for pos := 0; pos < r.board.Size(); pos++ {
		coord, _ := r.board.Coordinate(pos)
		rows[coord.Row][coord.Col] = cell(pos)
	}

	lines := make([]string, side)
	for row := range rows {
		lines[row] = strings.Join(rows[row], "")
	}
	return strings.Join(lines, "\n")
}

func isCenter(i, side int) bool {
	return i == side/2 || i == (side-1)/2
}

// boardEmbed renders the shared board message
func (r *renderer) boardEmbed(view *boardView) *discordgo.MessageEmbed {
	snap := view.Session

	var description strings.Builder
	if view.Notice != nil {
		fmt.Fprintf(&description, "**%s**\n%s\n\n", view.Notice.Title, view.Notice.Message)
	}
	description.WriteString(r.grid(snap))
	if view.Prompt != "" {
		fmt.Fprintf(&description, "\n\n%s", view.Prompt)
	}

	color := colorActive
	clock := "⏱️ " + formatClock(snap.TimeLeft)
	switch {
	case snap.Expired():
		color = colorExpired
		clock = "⏰ 00:00"
	case snap.Danger():
		color = colorDanger
		clock = "⚠️ " + formatClock(snap.TimeLeft)
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Tiempo", Value: clock, Inline: true},
		{Name: "Dificultad", Value: difficultyLabel(snap.Difficulty), Inline: true},
		{Name: "Jugadores", Value: r.playerLines(snap), Inline: false},
	}

	if snap.Mission != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Misión en %s %s", snap.ActivePlace.Emoji(), snap.ActivePlace.DisplayName()),
			Value: fmt.Sprintf("**%s**\n%s", snap.Mission.Title, snap.Mission.Description),
		})
	}
	if snap.Phase == models.PhaseBuilding {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Bandeja",
			Value: r.trayLines(snap.Builder),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Cuentas Claras 💰",
		Description: description.String(),
		Color:       color,
		Fields:      fields,
	}
}

func (r *renderer) playerLines(snap *models.Session) string {
	lines := make([]string, 0, len(snap.Players))
	for i, p := range snap.Players {
		marker := ""
		if i == snap.Turn && !snap.Expired() {
			marker = " ◀️"
		}
		lines = append(lines, fmt.Sprintf("%s **%s** · 💰 %s · ⭐ %d%s",
			token(i), p.Name, r.formatter.Format(wallet.EffectiveTotal(r.denominations, p)), p.Stars, marker))
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) trayLines(tray models.Wallet) string {
	lines := wallet.Summary(r.denominations.Ordered(), tray)
	if len(lines) == 0 {
		return "Vacía. Agrega monedas y billetes con los botones."
	}

	out := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		out = append(out, fmt.Sprintf("%d × %s", line.Count, line.Denomination.Label))
	}
	out = append(out, fmt.Sprintf("**Total: %s**", r.formatter.Format(wallet.TotalValue(r.denominations, tray))))
	return strings.Join(out, "\n")
}

// boardComponents returns the buttons available in the current phase
func (r *renderer) boardComponents(snap *models.Session) []discordgo.MessageComponent {
	if snap.Expired() {
		return []discordgo.MessageComponent{}
	}

	skip := discordgo.Button{Label: "Pasar turno", Style: discordgo.SecondaryButton, CustomID: ButtonSkip, Emoji: &discordgo.ComponentEmoji{Name: "⏭️"}}

	switch snap.Phase {
	case models.PhaseMoving:
		return []discordgo.MessageComponent{}
	case models.PhaseMissionOffered:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Aceptar misión", Style: discordgo.SuccessButton, CustomID: ButtonAccept, Emoji: &discordgo.ComponentEmoji{Name: "✅"}},
				discordgo.Button{Label: "Otra misión", Style: discordgo.PrimaryButton, CustomID: ButtonAnother, Emoji: &discordgo.ComponentEmoji{Name: "🔄"}},
				skip,
			}},
		}
	case models.PhaseBuilding:
		return r.builderComponents(skip)
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Lanzar dado", Style: discordgo.PrimaryButton, CustomID: ButtonRoll, Emoji: &discordgo.ComponentEmoji{Name: "🎲"}},
			skip,
		}},
	}
}

// builderComponents lays out add and remove buttons per denomination, then the tray actions
func (r *renderer) builderComponents(skip discordgo.Button) []discordgo.MessageComponent {
	ordered := r.denominations.Ordered()
	// Four rows of denominations leave the last row for the tray actions
	if limit := 2 * buttonsPerRow; len(ordered) > limit {
		ordered = ordered[:limit]
	}

	var add, remove []discordgo.MessageComponent
	for _, d := range ordered {
		add = append(add, discordgo.Button{Label: "+" + d.Label, Style: discordgo.SuccessButton, CustomID: buttonAddPrefix + string(d.Key)})
		remove = append(remove, discordgo.Button{Label: "−" + d.Label, Style: discordgo.SecondaryButton, CustomID: buttonRemovePrefix + string(d.Key)})
	}

	var rows []discordgo.MessageComponent
	rows = append(rows, chunkRows(add)...)
	rows = append(rows, chunkRows(remove)...)
	rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Entregar", Style: discordgo.PrimaryButton, CustomID: ButtonSubmit, Emoji: &discordgo.ComponentEmoji{Name: "📤"}},
		discordgo.Button{Label: "Limpiar", Style: discordgo.DangerButton, CustomID: ButtonClear, Emoji: &discordgo.ComponentEmoji{Name: "🧹"}},
		skip,
	}})
	return rows
}

func chunkRows(buttons []discordgo.MessageComponent) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for start := 0; start < len(buttons); start += buttonsPerRow {
		end := start + buttonsPerRow
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons[start:end]})
	}
	return rows
}

// lobbyEmbed renders the waiting room
func (r *renderer) lobbyEmbed(lobby *models.Lobby) *discordgo.MessageEmbed {
	names := make([]string, 0, len(lobby.Players))
	for i, p := range lobby.Players {
		names = append(names, fmt.Sprintf("%s %s", token(i), p.Name))
	}

	return &discordgo.MessageEmbed{
		Title:       "Cuentas Claras 💰 · Sala de espera",
		Description: "Únete con el botón. Quien creó la sala comienza la partida.\nGana quien invierta más: el que termine con menos dinero.",
		Color:       colorLobby,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Duración", Value: fmt.Sprintf("%d minutos", lobby.Minutes), Inline: true},
			{Name: "Dificultad", Value: difficultyLabel(lobby.Difficulty), Inline: true},
			{Name: fmt.Sprintf("Jugadores (%d)", len(lobby.Players)), Value: strings.Join(names, "\n")},
		},
	}
}

func lobbyComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Unirse", Style: discordgo.SuccessButton, CustomID: ButtonJoin, Emoji: &discordgo.ComponentEmoji{Name: "🙋"}},
			discordgo.Button{Label: "Comenzar", Style: discordgo.PrimaryButton, CustomID: ButtonBegin, Emoji: &discordgo.ComponentEmoji{Name: "▶️"}},
		}},
	}
}

// rankingEmbed lists players from lowest total, the winner first
func (r *renderer) rankingEmbed(ranking []models.RankingEntry, final bool) *discordgo.MessageEmbed {
	title := "Ranking parcial"
	if final {
		title = "Ranking final"
	}

	lines := make([]string, 0, len(ranking))
	for i, entry := range ranking {
		line := fmt.Sprintf("%d. **%s** · 💰 %s · ⭐ %d", entry.Rank, entry.PlayerName, r.formatter.Format(entry.Total), entry.Stars)
		if i == 0 {
			line += " 🏆"
		}
		lines = append(lines, line)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: "Gana quien invirtió más (quien tiene menos dinero).\n\n" + strings.Join(lines, "\n"),
		Color:       colorLobby,
	}
}

// ledgerEmbed lists recent money movements, newest last
func (r *renderer) ledgerEmbed(entries []*models.LedgerEntry, snap *models.Session) *discordgo.MessageEmbed {
	names := make(map[string]string, len(snap.Players))
	for _, p := range snap.Players {
		names[p.ID] = p.Name
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		name, ok := names[entry.PlayerID]
		if !ok {
			name = entry.PlayerID
		}
		lines = append(lines, fmt.Sprintf("**%s** · %s · %s → %s",
			name, reasonLabel(entry.Reason), r.formatter.Signed(entry.Delta), r.formatter.Format(entry.Balance)))
	}

	description := "Todavía no hay movimientos."
	if len(lines) > 0 {
		description = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "Movimientos recientes 🧾",
		Description: description,
		Color:       colorLobby,
	}
}

func reasonLabel(reason models.LedgerReason) string {
	switch reason {
	case models.LedgerReasonMission:
		return "Misión"
	case models.LedgerReasonBankCommission:
		return "Comisión bancaria"
	case models.LedgerReasonBankCorrection:
		return "Error administrativo"
	case models.LedgerReasonBankMaintenance:
		return "Cargo por mantención"
	}
	return string(reason)
}

func difficultyLabel(d models.Difficulty) string {
	switch d {
	case models.DifficultyBasic:
		return "Básico"
	case models.DifficultyIntermediate:
		return "Intermedio"
	case models.DifficultyAdvanced:
		return "Avanzado"
	}
	return string(d)
}
