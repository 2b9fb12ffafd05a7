package db

import (
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Chat struct {
	ChatID int64  `json:"chat_id"`
	Type   string `json:"type"`
}

func (c *Client) GetOrCreateChat(chatID int64, chatType string) error {
	var results []Chat
	err := c.DB.From("chats").Select("chat_id").Eq("chat_id", strconv.FormatInt(chatID, 10)).Execute(&results)
	if err != nil {
		c.log.Error("Error checking for chat", zap.Int64("chat_id", chatID), zap.Error(err))
		return errors.Wrap(err, "select chats")
	}

	if len(results) > 0 {
		return nil
	}

	c.log.Info("Registering chat", zap.Int64("chat_id", chatID), zap.String("type", chatType))
	var newResults []Chat
	err = c.DB.From("chats").Insert(Chat{ChatID: chatID, Type: chatType}).Execute(&newResults)
	if err != nil {
		c.log.Error("Error creating chat entry", zap.Int64("chat_id", chatID), zap.Error(err))
		return errors.Wrap(err, "insert chats")
	}
	return nil
}

// GetAllChatsByType menganggap "group" mencakup group dan supergroup.
func (c *Client) GetAllChatsByType(chatType string) ([]int64, error) {
	var results []Chat
	var err error

	if chatType == "group" {
		err = c.DB.From("chats").Select("chat_id").Filter("type", "in", "(\"group\",\"supergroup\")").Execute(&results)
	} else {
		err = c.DB.From("chats").Select("chat_id").Eq("type", chatType).Execute(&results)
	}
	if err != nil {
		c.log.Error("Error fetching chats by type", zap.String("type", chatType), zap.Error(err))
		return nil, errors.Wrapf(err, "select chats %s", chatType)
	}

	chatIDs := make([]int64, 0, len(results))
	for _, chat := range results {
		chatIDs = append(chatIDs, chat.ChatID)
	}
	return chatIDs, nil
}
