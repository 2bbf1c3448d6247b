package discord

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

type sentMessage struct {
	channelID string
	content   string
	complex   *discordgo.MessageSend
}

type roleChange struct {
	op      string
	guildID string
	userID  string
	roleID  string
}

type fakeSession struct {
	mu sync.Mutex

	history   map[string][]*discordgo.Message
	replies   []string
	sent      []sentMessage
	edits     []*discordgo.MessageEdit
	roles     []roleChange
	nextMsgID int

	editErr    error
	sendErr    error
	historyErr error
	roleErr    error
}

func newFakeSession() *fakeSession {
	return &fakeSession{history: map[string][]*discordgo.Message{}}
}

func (f *fakeSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if resp.Data == nil || resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		return errors.New("reply must be ephemeral")
	}
	f.replies = append(f.replies, resp.Data.Content)
	return nil
}

func (f *fakeSession) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	msgs := f.history[channelID]
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (f *fakeSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, content: content})
	return f.newMessage(channelID), nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, complex: data})
	return f.newMessage(channelID), nil
}

func (f *fakeSession) ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return nil, f.editErr
	}
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeSession) GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles = append(f.roles, roleChange{"add", guildID, userID, roleID})
	return f.roleErr
}

func (f *fakeSession) GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles = append(f.roles, roleChange{"remove", guildID, userID, roleID})
	return f.roleErr
}

func (f *fakeSession) newMessage(channelID string) *discordgo.Message {
	f.nextMsgID++
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", f.nextMsgID), ChannelID: channelID}
}

func (f *fakeSession) lastEdit() *discordgo.MessageEdit {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.edits) == 0 {
		return nil
	}
	return f.edits[len(f.edits)-1]
}

func (f *fakeSession) lastReply() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.replies) == 0 {
		return ""
	}
	return f.replies[len(f.replies)-1]
}
