// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

// Package notice serves platform announcements to readers.
package notice

// Notice is one active platform announcement.
type Notice struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}
