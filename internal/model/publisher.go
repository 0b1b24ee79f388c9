package model

import "time"

// Publisher is a wallet allowed to manage projects
type Publisher struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	AddedBy       string    `json:"addedBy"`
	CreatedAt     time.Time `json:"createdAt"`
	Primary       bool      `json:"primary"`
}

// AddPublisherRequest represents request for POST /admin/publishers
type AddPublisherRequest struct {
	WalletAddress string `json:"walletAddress"`
}
