package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/cuentasclaras/internal/board"
	"github.com/KirkDiggler/cuentasclaras/internal/denomination"
	"github.com/KirkDiggler/cuentasclaras/internal/engine"
	"github.com/KirkDiggler/cuentasclaras/internal/missions"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/KirkDiggler/cuentasclaras/internal/money"
	"github.com/KirkDiggler/cuentasclaras/internal/services/game"
	"github.com/KirkDiggler/cuentasclaras/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	gameService      game.Service
	messagingService messaging.Service
	updates          *UpdateQueue
	renderer         *renderer
	config           *Config

	// boards maps a channel to the message showing its board
	mu     sync.Mutex
	boards map[string]string

	cancel context.CancelFunc
	done   chan struct{}
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	GameService      game.Service
	MessagingService messaging.Service

	// Updates is the listener handed to the game service
	Updates *UpdateQueue

	// Content used to draw the board
	Board         *board.Topology
	Denominations *denomination.Catalog

	// Formatter defaults to es-CL
	Formatter *money.Formatter
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Updates == nil {
		return nil, errors.New("update queue cannot be nil")
	}

	if cfg.Board == nil || cfg.Denominations == nil {
		return nil, errors.New("board and denominations cannot be nil")
	}

	formatter := cfg.Formatter
	if formatter == nil {
		formatter = money.Default()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		updates:          cfg.Updates,
		renderer: &renderer{
			board:         cfg.Board,
			denominations: cfg.Denominations,
			formatter:     formatter,
		},
		config: cfg,
		boards: make(map[string]string),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection, registers commands and starts
// relaying session updates
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cuentasCmd := NewCuentasCommand(b)
	if err := b.RegisterCommand(cuentasCmd); err != nil {
		return fmt.Errorf("failed to register cuentas command: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	go b.pump(ctx)

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	if b.cancel != nil {
		b.cancel()
		<-b.done
	}

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	channelID := i.ChannelID
	userID, username := interactionUser(i)

	switch customID {
	case ButtonJoin:
		return b.handleJoinButton(s, i, channelID, userID, username)
	case ButtonBegin:
		return b.handleBeginButton(s, i, channelID, userID)
	default:
		return b.handleBoardButton(s, i, channelID, userID, customID)
	}
}

// handleJoinButton adds the clicking user to the lobby
func (b *Bot) handleJoinButton(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, username string) error {
	ctx := context.Background()

	output, err := b.gameService.JoinLobby(ctx, &game.JoinLobbyInput{
		ChannelID:  channelID,
		PlayerID:   userID,
		PlayerName: username,
	})
	if err != nil {
		return b.respondWithError(ctx, s, i, err)
	}

	joinMsg, err := b.messagingService.GetJoinLobbyMessage(ctx, &messaging.GetJoinLobbyMessageInput{
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

	embed := b.renderer.lobbyEmbed(output.Lobby)
	if joinMsg.Message != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: joinMsg.Message}
	}
	return RespondWithUpdate(s, i, embed, lobbyComponents())
}

// handleBeginButton turns the lobby message into the board
func (b *Bot) handleBeginButton(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	ctx := context.Background()

	output, err := b.gameService.StartSession(ctx, &game.StartSessionInput{
		ChannelID:   channelID,
		RequesterID: userID,
	})
	if err != nil {
		return b.respondWithError(ctx, s, i, err)
	}

	if i.Message != nil {
		b.setBoard(channelID, i.Message.ID)
	}

	view := b.view(ctx, output.Session, nil, nil)
	return RespondWithUpdate(s, i, b.renderer.boardEmbed(view), b.renderer.boardComponents(output.Session))
}

// handleBoardButton runs a turn action from the board's buttons
func (b *Bot) handleBoardButton(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, customID string) error {
	ctx := context.Background()

	if i.Message != nil {
		b.setBoard(channelID, i.Message.ID)
	}

	snap, err := b.boardAction(ctx, channelID, userID, customID)
	if err != nil {
		// A landing can fail after the token moved; the board still changed
		if snap != nil {
			b.publishBoard(channelID, b.view(ctx, snap, nil, err))
		}
		return b.respondWithError(ctx, s, i, err)
	}

	view := b.view(ctx, snap, nil, nil)
	return RespondWithUpdate(s, i, b.renderer.boardEmbed(view), b.renderer.boardComponents(snap))
}

// boardAction maps a button to its game operation and returns the resulting snapshot
func (b *Bot) boardAction(ctx context.Context, channelID, userID, customID string) (*models.Session, error) {
	switch {
	case customID == ButtonRoll:
		output, err := b.gameService.Roll(ctx, &game.RollInput{ChannelID: channelID, PlayerID: userID})
		if output != nil {
			return output.Session, err
		}
		return nil, err
	case customID == ButtonAccept:
		output, err := b.gameService.AcceptMission(ctx, &game.AcceptMissionInput{ChannelID: channelID, PlayerID: userID})
		if err != nil {
			return nil, err
		}
		return output.Session, nil
	case customID == ButtonAnother:
		output, err := b.gameService.RequestAnotherMission(ctx, &game.RequestAnotherMissionInput{ChannelID: channelID, PlayerID: userID})
		if err != nil {
			return nil, err
		}
		return output.Session, nil
	case customID == ButtonClear:
		output, err := b.gameService.ClearBuilder(ctx, &game.ClearBuilderInput{ChannelID: channelID, PlayerID: userID})
		if err != nil {
			return nil, err
		}
		return output.Session, nil
	case customID == ButtonSubmit:
		output, err := b.gameService.SubmitAmount(ctx, &game.SubmitAmountInput{ChannelID: channelID, PlayerID: userID})
		if err != nil {
			return nil, err
		}
		return output.Session, nil
	case customID == ButtonSkip:
		output, err := b.gameService.SkipTurn(ctx, &game.SkipTurnInput{ChannelID: channelID, PlayerID: userID})
		if err != nil {
			return nil, err
		}
		return output.Session, nil
	case strings.HasPrefix(customID, buttonAddPrefix), strings.HasPrefix(customID, buttonRemovePrefix):
		key, delta := strings.TrimPrefix(customID, buttonAddPrefix), 1
		if strings.HasPrefix(customID, buttonRemovePrefix) {
			key, delta = strings.TrimPrefix(customID, buttonRemovePrefix), -1
		}
		output, err := b.gameService.AdjustBuilder(ctx, &game.AdjustBuilderInput{
			ChannelID: channelID,
			PlayerID:  userID,
			Key:       models.DenominationKey(key),
			Delta:     delta,
		})
		if err != nil {
			return nil, err
		}
		return output.Session, nil
	}

	return nil, fmt.Errorf("%w: unknown button %s", game.ErrInvalidInput, customID)
}

// respondWithError explains err to the user who caused it
func (b *Bot) respondWithError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	output, msgErr := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		log.Printf("Error getting error message: %v", msgErr)
		return RespondWithError(s, i, err.Error())
	}

	if !isPlayerError(err) {
		log.Printf("Interaction in channel %s failed: %v", i.ChannelID, err)
	}
	return RespondWithError(s, i, output.Message)
}

// isPlayerError reports whether err is a rule the player broke rather than a failure
func isPlayerError(err error) bool {
	var gameErr game.GameError
	var engineErr engine.EngineError
	var catalogErr missions.CatalogError
	return errors.As(err, &gameErr) || errors.As(err, &engineErr) || errors.As(err, &catalogErr)
}

// view collects the texts shown around the grid. ranking is only used once time is up.
func (b *Bot) view(ctx context.Context, snap *models.Session, ranking []models.RankingEntry, landingErr error) *boardView {
	view := &boardView{Session: snap}

	if snap.Expired() {
		if ranking != nil {
			output, err := b.messagingService.GetTimeUpMessage(ctx, &messaging.GetTimeUpMessageInput{Ranking: ranking})
			if err != nil {
				log.Printf("Error getting time up message: %v", err)
			} else {
				view.Notice = &notice{Title: output.Title, Message: output.Message}
			}
		}
		return view
	}

	if landingErr != nil {
		output, err := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: landingErr})
		if err != nil {
			log.Printf("Error getting error message: %v", err)
		} else {
			view.Notice = &notice{Title: "Casilla sin misiones", Message: output.Message}
		}
	} else if snap.LastEvent != nil {
		output, err := b.messagingService.GetEventMessage(ctx, &messaging.GetEventMessageInput{
			Event:      snap.LastEvent,
			PlayerName: playerName(snap, snap.LastEvent.PlayerID),
		})
		if err != nil {
			log.Printf("Error getting event message: %v", err)
		} else {
			view.Notice = &notice{Title: output.Title, Message: output.Message}
		}
	}

	if active := snap.ActivePlayer(); active != nil {
		output, err := b.messagingService.GetTurnMessage(ctx, &messaging.GetTurnMessageInput{
			PlayerName: active.Name,
			Phase:      snap.Phase,
			Place:      snap.ActivePlace,
		})
		if err != nil {
			log.Printf("Error getting turn message: %v", err)
		} else {
			view.Prompt = output.Message
		}
	}

	return view
}

func playerName(snap *models.Session, playerID string) string {
	for _, p := range snap.Players {
		if p.ID == playerID {
			return p.Name
		}
	}
	return playerID
}

// pump relays session updates to the board messages until ctx is cancelled
func (b *Bot) pump(ctx context.Context) {
	defer close(b.done)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-b.updates.Updates():
			// A newer frame is already waiting
			if update.Kind == game.UpdateStep && b.updates.Pending() > 0 {
				continue
			}
			b.publishBoard(update.Session.ChannelID, b.view(ctx, update.Session, update.Ranking, update.Err))
		}
	}
}

// publishBoard edits the channel's board message, or posts a new one
func (b *Bot) publishBoard(channelID string, view *boardView) {
	embeds := []*discordgo.MessageEmbed{b.renderer.boardEmbed(view)}
	components := b.renderer.boardComponents(view.Session)

	if messageID := b.boardFor(channelID); messageID != "" {
		_, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    channelID,
			ID:         messageID,
			Embeds:     &embeds,
			Components: &components,
		})
		if err == nil {
			return
		}
		log.Printf("Error updating board message in channel %s: %v", channelID, err)
	}

	msg, err := b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     embeds,
		Components: components,
	})
	if err != nil {
		log.Printf("Error sending board message to channel %s: %v", channelID, err)
		return
	}
	b.setBoard(channelID, msg.ID)
}

func (b *Bot) boardFor(channelID string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.boards[channelID]
}

func (b *Bot) setBoard(channelID, messageID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.boards[channelID] = messageID
}

func (b *Bot) forgetBoard(channelID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.boards, channelID)
}
