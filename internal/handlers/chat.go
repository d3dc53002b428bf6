package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/services"
)

// CreateChat opens a chat between the acting user and the target user.
func CreateChat(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var input struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := services.CreateChat(userId, input.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chatId": chat.ID, "chat": chat})
}

// ListChats returns every chat the acting user belongs to.
func ListChats(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	chats, err := services.ListChats(userId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

// GetChatMessages returns a chat's full history, oldest first. Only members
// may read it.
func GetChatMessages(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	chatId := c.Param("chatId")

	if !services.IsChatMember(chatId, userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	messages, err := services.GetHistory(chatId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetChatMembers returns the chat's participants (id + nickname), used by
// clients to fetch each other's public keys.
func GetChatMembers(c *gin.Context) {
	chatId := c.Param("chatId")

	members, err := services.GetChatMembers(chatId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}
