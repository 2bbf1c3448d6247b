package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/vncsmyrnk/verifybot/internal/core/ports"
)

type roleManager struct {
	session Session
}

func NewRoleManager(session Session) ports.RoleManager {
	return &roleManager{session: session}
}

func (m *roleManager) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	return m.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
}

func (m *roleManager) RemoveRole(ctx context.Context, guildID, userID, roleID string) error {
	return m.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx))
}
