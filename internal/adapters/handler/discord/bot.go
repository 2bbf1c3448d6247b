// Package discord is the chat-platform adapter: it renders the verification
// and poll messages, receives gateway events and turns them into calls on the
// core services.
//
// Every handler runs on its own goroutine (discordgo's default), recovers its
// own panics and never lets an error escape to the gateway loop.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/verifybot/internal/core/domain"
	"github.com/vncsmyrnk/verifybot/internal/core/ports"
)

type Config struct {
	VerificationChannelID string
	PollChannelID         string
}

type Bot struct {
	session      Session
	votes        ports.VoteService
	verification ports.VerificationService
	cfg          Config
	logger       *slog.Logger

	// ctx scopes REST calls made from event handlers; it is set by Register.
	ctx context.Context

	mu            sync.RWMutex
	selfID        string
	pollMessageID string

	// renderMu serializes poll message edits so the displayed count never
	// goes backwards.
	renderMu sync.Mutex
}

func NewBot(session Session, votes ports.VoteService, verification ports.VerificationService, cfg Config, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		session:      session,
		votes:        votes,
		verification: verification,
		cfg:          cfg,
		logger:       logger,
		ctx:          context.Background(),
	}
}

// Register wires the bot's handlers into the gateway session. ctx bounds
// every platform call issued by those handlers. The returned function
// removes all handlers.
func (b *Bot) Register(ctx context.Context, s HandlerAdder) func() {
	b.ctx = ctx

	removers := []func(){
		s.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
			b.onReady(b.ctx, r)
		}),
		s.AddHandler(func(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
			b.onMemberAdd(b.ctx, m)
		}),
		s.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
			b.onInteraction(b.ctx, i.Interaction)
		}),
	}

	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

// PollMessageID returns the resolved poll message, or "" before Ready.
func (b *Bot) PollMessageID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pollMessageID
}

func (b *Bot) setPollMessageID(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pollMessageID = id
}

func (b *Bot) botUserID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selfID
}

func (b *Bot) eventLogger(event string) *slog.Logger {
	return b.logger.With("event", event, "event_id", uuid.NewString())
}

func recoverHandler(logger *slog.Logger) {
	if r := recover(); r != nil {
		logger.Error("handler panicked", "panic", r)
	}
}

func (b *Bot) onReady(ctx context.Context, r *discordgo.Ready) {
	logger := b.eventLogger("ready")
	defer recoverHandler(logger)

	if r.User != nil {
		b.mu.Lock()
		b.selfID = r.User.ID
		b.mu.Unlock()
		logger.Info("connected", "user", r.User.Username, "user_id", r.User.ID)
	}

	if err := b.ensureVerificationMessage(ctx, logger); err != nil {
		logger.Error("failed to set up verification message", "error", err)
	}
	if err := b.ensurePollMessage(ctx, logger); err != nil {
		logger.Error("failed to set up poll message", "error", err)
	}
}

func (b *Bot) onMemberAdd(ctx context.Context, m *discordgo.GuildMemberAdd) {
	logger := b.eventLogger("member_add")
	defer recoverHandler(logger)

	if m.Member == nil || m.User == nil {
		return
	}

	if err := b.verification.Restrict(ctx, m.GuildID, m.User.ID); err != nil {
		logger.Error("failed to restrict new member", "guild_id", m.GuildID, "user_id", m.User.ID, "error", err)
		return
	}
	logger.Info("new member restricted", "guild_id", m.GuildID, "user_id", m.User.ID)
}

func (b *Bot) onInteraction(ctx context.Context, i *discordgo.Interaction) {
	logger := b.eventLogger("interaction")
	defer recoverHandler(logger)

	if i == nil || i.Type != discordgo.InteractionMessageComponent {
		return
	}

	userID := interactionUserID(i)
	customID := i.MessageComponentData().CustomID
	logger = logger.With("custom_id", customID, "user_id", userID, "interaction_id", i.ID)

	switch customID {
	case verifyButtonID:
		b.handleVerify(ctx, logger, i, userID)
	case voteButtonID:
		b.handleVote(ctx, logger, i, userID)
	default:
		logger.Debug("ignoring unknown component")
	}
}

func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (b *Bot) handleVerify(ctx context.Context, logger *slog.Logger, i *discordgo.Interaction, userID string) {
	if err := b.verification.Verify(ctx, i.GuildID, userID); err != nil {
		logger.Error("verification failed", "error", err)
		b.reply(ctx, logger, i, msgVerifyError)
		return
	}
	logger.Info("member verified")
	b.reply(ctx, logger, i, msgVerified)
}

func (b *Bot) handleVote(ctx context.Context, logger *slog.Logger, i *discordgo.Interaction, userID string) {
	outcome, err := b.votes.Vote(ctx, userID)
	if err != nil {
		logger.Error("vote failed", "error", err)
		b.reply(ctx, logger, i, msgVoteError)
		return
	}
	logger = logger.With("outcome", outcome.String())

	if !outcome.Accepted() {
		b.reply(ctx, logger, i, outcomeReply(outcome))
		return
	}

	if err := b.renderPoll(ctx); err != nil {
		logger.Error("failed to update poll message", "error", err)
		b.reply(ctx, logger, i, msgVoteError)
		return
	}

	if outcome == domain.OutcomeAcceptedAndClosed {
		if _, err := b.session.ChannelMessageSend(b.cfg.PollChannelID, msgPollCompletion, discordgo.WithContext(ctx)); err != nil {
			logger.Error("failed to announce poll completion", "error", err)
			b.reply(ctx, logger, i, msgVoteError)
			return
		}
		logger.Info("poll completed")
	}

	b.reply(ctx, logger, i, outcomeReply(outcome))
}

func (b *Bot) reply(ctx context.Context, logger *slog.Logger, i *discordgo.Interaction, content string) {
	if err := b.session.InteractionRespond(i, ephemeral(content), discordgo.WithContext(ctx)); err != nil {
		logger.Error("failed to reply to interaction", "error", err)
	}
}

// renderPoll edits the poll message with the ledger state at the moment the
// edit is issued.
func (b *Bot) renderPoll(ctx context.Context) error {
	b.renderMu.Lock()
	defer b.renderMu.Unlock()

	messageID := b.PollMessageID()
	if messageID == "" {
		return domain.ErrPollMessageMissing
	}

	snap := b.votes.Snapshot()
	embeds := []*discordgo.MessageEmbed{pollEmbed(snap)}
	components := pollComponents(snap)

	edit := &discordgo.MessageEdit{
		ID:         messageID,
		Channel:    b.cfg.PollChannelID,
		Embeds:     &embeds,
		Components: &components,
	}
	if _, err := b.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit poll message %s: %w", messageID, err)
	}
	return nil
}
