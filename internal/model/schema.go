package model

// Schema lists every table managed by AutoMigrate, parents before children.
func Schema() []interface{} {
	return []interface{}{
		&User{},
		&Lawyer{},
		&Admin{},
		&VerificationCode{},
		&Consultation{},
		&ChatHistoryEntry{},
		&Conversation{},
		&ConversationMessage{},
		&Ad{},
		&Payment{},
		&NotificationType{},
		&Notification{},
	}
}
