package discord

import "github.com/bwmarrin/discordgo"

// Session is the subset of *discordgo.Session the bot talks to.
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

// HandlerAdder registers gateway event handlers.
type HandlerAdder interface {
	AddHandler(handler interface{}) func()
}

var (
	_ Session      = (*discordgo.Session)(nil)
	_ HandlerAdder = (*discordgo.Session)(nil)
)

// Intents are the gateway intents the bot needs: guild metadata for
// interactions and the privileged member intent for join events.
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
