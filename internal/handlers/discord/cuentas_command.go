package discord

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/cuentasclaras/internal/engine"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/KirkDiggler/cuentasclaras/internal/services/game"
	"github.com/KirkDiggler/cuentasclaras/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// defaultLedgerLimit is how many movements /cuentas movimientos shows
const defaultLedgerLimit = 10

// CuentasCommand handles the /cuentas command
type CuentasCommand struct {
	BaseCommand
	bot *Bot
}

// NewCuentasCommand creates a new cuentas command handler
func NewCuentasCommand(bot *Bot) *CuentasCommand {
	minMinutes := float64(engine.MinMinutes)
	minAmount := float64(0)
	minLimit := float64(1)

	return &CuentasCommand{
		BaseCommand: BaseCommand{
			Name:        "cuentas",
			Description: "Cuentas Claras: misiones con dinero en el tablero",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "crear",
					Description: "Abre una sala de espera en este canal",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "minutos",
							Description: "Duración de la partida",
							MinValue:    &minMinutes,
							MaxValue:    float64(engine.MaxMinutes),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "dificultad",
							Description: "Nivel de las misiones",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Básico", Value: string(models.DifficultyBasic)},
								{Name: "Intermedio", Value: string(models.DifficultyIntermediate)},
								{Name: "Avanzado", Value: string(models.DifficultyAdvanced)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unirse",
					Description: "Únete a la sala de este canal",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "comenzar",
					Description: "Comienza la partida con los jugadores de la sala",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "tablero",
					Description: "Vuelve a mostrar el tablero",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "entregar",
					Description: "Entrega un monto escrito para la misión",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "monto",
							Description: "Monto en pesos",
							Required:    true,
							MinValue:    &minAmount,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ranking",
					Description: "Muestra quién va ganando",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "movimientos",
					Description: "Muestra los últimos movimientos de dinero",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "cantidad",
							Description: "Cuántos movimientos mostrar",
							MinValue:    &minLimit,
							MaxValue:    50,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "terminar",
					Description: "Termina la partida y muestra el ranking final",
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the cuentas command
func (c *CuentasCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	channelID := i.ChannelID
	userID, username := interactionUser(i)

	sub := data.Options[0]
	var err error
	switch sub.Name {
	case "crear":
		err = c.handleCreate(ctx, s, i, sub, channelID, userID, username)
	case "unirse":
		err = c.handleJoin(ctx, s, i, channelID, userID, username)
	case "comenzar":
		err = c.handleBegin(ctx, s, i, channelID, userID)
	case "tablero":
		err = c.handleBoard(ctx, s, i, channelID)
	case "entregar":
		err = c.handleSubmit(ctx, s, i, sub, channelID, userID)
	case "ranking":
		err = c.handleRanking(ctx, s, i, channelID)
	case "movimientos":
		err = c.handleLedger(ctx, s, i, sub, channelID)
	case "terminar":
		err = c.handleEnd(ctx, s, i, channelID, userID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleCreate opens a lobby with the caller as its first player
func (c *CuentasCommand) handleCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, channelID, userID, username string) error {
	input := &game.OpenLobbyInput{
		ChannelID:   channelID,
		CreatorID:   userID,
		CreatorName: username,
	}
	for _, opt := range sub.Options {
		switch opt.Name {
		case "minutos":
			input.Minutes = int(opt.IntValue())
		case "dificultad":
			input.Difficulty = models.Difficulty(opt.StringValue())
		}
	}

	output, err := c.bot.gameService.OpenLobby(ctx, input)
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, c.bot.renderer.lobbyEmbed(output.Lobby), lobbyComponents())
}

// handleJoin adds the caller to the lobby and reposts it
func (c *CuentasCommand) handleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, username string) error {
	output, err := c.bot.gameService.JoinLobby(ctx, &game.JoinLobbyInput{
		ChannelID:  channelID,
		PlayerID:   userID,
		PlayerName: username,
	})
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	joinMsg, err := c.bot.messagingService.GetJoinLobbyMessage(ctx, &messaging.GetJoinLobbyMessageInput{
		PlayerName:    username,
		AlreadyJoined: output.AlreadyJoined,
		PlayerCount:   len(output.Lobby.Players),
	})
	if err != nil {
		log.Printf("Error getting join message: %v", err)
		joinMsg = &messaging.GetJoinLobbyMessageOutput{}
	}

	if output.AlreadyJoined {
		return RespondWithEphemeralMessage(s, i, joinMsg.Message)
	}

	embed := c.bot.renderer.lobbyEmbed(output.Lobby)
	if joinMsg.Message != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: joinMsg.Message}
	}
	return RespondWithEmbed(s, i, embed, lobbyComponents())
}

// handleBegin starts the session and posts the board
func (c *CuentasCommand) handleBegin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	output, err := c.bot.gameService.StartSession(ctx, &game.StartSessionInput{
		ChannelID:   channelID,
		RequesterID: userID,
	})
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	return c.postBoard(ctx, s, i, output.Session, nil)
}

// handleBoard posts a fresh board, e.g. after the old one scrolled away
func (c *CuentasCommand) handleBoard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.bot.gameService.GetSession(ctx, &game.GetSessionInput{ChannelID: channelID})
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	var ranking []models.RankingEntry
	if output.Session.Expired() {
		rankingOutput, err := c.bot.gameService.GetRanking(ctx, &game.GetRankingInput{ChannelID: channelID})
		if err != nil {
			return c.bot.respondWithError(ctx, s, i, err)
		}
		ranking = rankingOutput.Ranking
	}

	return c.postBoard(ctx, s, i, output.Session, ranking)
}

// postBoard answers with the board and remembers the message for later edits
func (c *CuentasCommand) postBoard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, snap *models.Session, ranking []models.RankingEntry) error {
	view := c.bot.view(ctx, snap, ranking, nil)
	if err := RespondWithEmbed(s, i, c.bot.renderer.boardEmbed(view), c.bot.renderer.boardComponents(snap)); err != nil {
		return err
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("Error getting board message for channel %s: %v", snap.ChannelID, err)
		return nil
	}
	c.bot.setBoard(snap.ChannelID, msg.ID)
	return nil
}

// handleSubmit resolves the mission with a typed amount instead of the tray
func (c *CuentasCommand) handleSubmit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, channelID, userID string) error {
	var amount int
	for _, opt := range sub.Options {
		if opt.Name == "monto" {
			amount = int(opt.IntValue())
		}
	}

	output, err := c.bot.gameService.SubmitAmount(ctx, &game.SubmitAmountInput{
		ChannelID: channelID,
		PlayerID:  userID,
		Amount:    &amount,
	})
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	view := c.bot.view(ctx, output.Session, nil, nil)
	c.bot.publishBoard(channelID, view)

	message := "Monto entregado."
	if view.Notice != nil {
		message = "**" + view.Notice.Title + "**\n" + view.Notice.Message
	}
	return RespondWithEphemeralMessage(s, i, message)
}

// handleRanking shows the standings
func (c *CuentasCommand) handleRanking(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.bot.gameService.GetRanking(ctx, &game.GetRankingInput{ChannelID: channelID})
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, c.bot.renderer.rankingEmbed(output.Ranking, output.Final), nil)
}

// handleLedger shows recent money movements
func (c *CuentasCommand) handleLedger(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, channelID string) error {
	limit := defaultLedgerLimit
	for _, opt := range sub.Options {
		if opt.Name == "cantidad" {
			limit = int(opt.IntValue())
		}
	}

	sessionOutput, err := c.bot.gameService.GetSession(ctx, &game.GetSessionInput{ChannelID: channelID})
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	output, err := c.bot.gameService.GetLedger(ctx, &game.GetLedgerInput{
		ChannelID: channelID,
		Limit:     limit,
	})
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, c.bot.renderer.ledgerEmbed(output.Entries, sessionOutput.Session), nil)
}

// handleEnd stops the session and shows the final standings
func (c *CuentasCommand) handleEnd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	output, err := c.bot.gameService.EndSession(ctx, &game.EndSessionInput{
		ChannelID:   channelID,
		RequesterID: userID,
	})
	if err != nil {
		return c.bot.respondWithError(ctx, s, i, err)
	}

	c.bot.forgetBoard(channelID)
	return RespondWithEmbed(s, i, c.bot.renderer.rankingEmbed(output.Ranking, true), nil)
}
