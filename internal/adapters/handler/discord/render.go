package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/vncsmyrnk/verifybot/internal/core/domain"
)

const (
	verifyButtonID = "verificar"
	voteButtonID   = "votar"

	verificationColor = 0xf1c40f
	pollColor         = 0x3498db
)

// Replies shown to the interacting user.
const (
	msgVerified       = "✅ Verificación completada."
	msgVerifyError    = "❌ Error al verificar."
	msgVoteAccepted   = "✅ Tu voto fue registrado."
	msgAlreadyVoted   = "⚠️ Ya votaste en esta encuesta."
	msgPollClosed     = "❌ La encuesta ya se completó."
	msgVoteError      = "❌ Error al votar."
	msgPollCompletion = "🎉 **¡La encuesta se completó!**"
)

func verificationEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔐 Verificación",
		Description: "Presiona el botón para verificarte.",
		Color:       verificationColor,
	}
}

func verificationComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: verifyButtonID,
					Label:    "✅ Verificarme",
					Style:    discordgo.SuccessButton,
				},
			},
		},
	}
}

func pollEmbed(snap domain.PollSnapshot) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📊 Encuesta",
		Description: fmt.Sprintf("**%d/%d**", snap.VoteCount, snap.Capacity),
		Color:       pollColor,
	}
}

// pollComponents disables the vote button once the poll is closed.
func pollComponents(snap domain.PollSnapshot) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: voteButtonID,
					Label:    "🗳️ Votar",
					Style:    discordgo.PrimaryButton,
					Disabled: snap.Closed,
				},
			},
		},
	}
}

func outcomeReply(outcome domain.VoteOutcome) string {
	switch outcome {
	case domain.OutcomeAccepted, domain.OutcomeAcceptedAndClosed:
		return msgVoteAccepted
	case domain.OutcomeAlreadyVoted:
		return msgAlreadyVoted
	case domain.OutcomePollClosed:
		return msgPollClosed
	default:
		return msgVoteError
	}
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

// firstButtonID returns the custom ID of the first button of the first row,
// handling both the value types we build and the pointer types discordgo
// decodes from the API.
func firstButtonID(components []discordgo.MessageComponent) string {
	if len(components) == 0 {
		return ""
	}

	var row []discordgo.MessageComponent
	switch r := components[0].(type) {
	case *discordgo.ActionsRow:
		row = r.Components
	case discordgo.ActionsRow:
		row = r.Components
	}
	if len(row) == 0 {
		return ""
	}

	switch b := row[0].(type) {
	case *discordgo.Button:
		return b.CustomID
	case discordgo.Button:
		return b.CustomID
	}
	return ""
}
