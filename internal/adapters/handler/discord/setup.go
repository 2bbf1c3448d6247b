package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const (
	verificationScanLimit = 10
	pollScanLimit         = 20
)

func (b *Bot) ensureVerificationMessage(ctx context.Context, logger *slog.Logger) error {
	messages, err := b.session.ChannelMessages(b.cfg.VerificationChannelID, verificationScanLimit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to fetch verification channel history: %w", err)
	}

	selfID := b.botUserID()
	for _, m := range messages {
		if m.Author != nil && m.Author.ID == selfID && len(m.Components) > 0 {
			logger.Debug("verification message already present", "message_id", m.ID)
			return nil
		}
	}

	msg := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{verificationEmbed()},
		Components: verificationComponents(),
	}
	sent, err := b.session.ChannelMessageSendComplex(b.cfg.VerificationChannelID, msg, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send verification message: %w", err)
	}
	logger.Info("verification message created", "message_id", sent.ID)
	return nil
}

// ensurePollMessage resolves the poll display reference from recent channel
// history, creating the message when none is found.
func (b *Bot) ensurePollMessage(ctx context.Context, logger *slog.Logger) error {
	messages, err := b.session.ChannelMessages(b.cfg.PollChannelID, pollScanLimit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to fetch poll channel history: %w", err)
	}

	selfID := b.botUserID()
	for _, m := range messages {
		if m.Author == nil || m.Author.ID != selfID {
			continue
		}
		if firstButtonID(m.Components) != voteButtonID {
			continue
		}

		b.setPollMessageID(m.ID)
		logger.Info("existing poll message found", "message_id", m.ID)
		// The ledger may have moved while the bot was offline.
		return b.renderPoll(ctx)
	}

	snap := b.votes.Snapshot()
	msg := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pollEmbed(snap)},
		Components: pollComponents(snap),
	}
	sent, err := b.session.ChannelMessageSendComplex(b.cfg.PollChannelID, msg, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send poll message: %w", err)
	}

	b.setPollMessageID(sent.ID)
	logger.Info("poll message created", "message_id", sent.ID)
	return nil
}
