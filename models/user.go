package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an end-user registered under one admin (shop).
type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CreatedBy    primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	Name         string             `json:"name" bson:"name"`
	Contact      string             `json:"contact" bson:"contact"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
	Location     string             `json:"location,omitempty" bson:"location,omitempty"`
	CashBalance  float64            `json:"cashBalance" bson:"cashBalance"`
	GoldBalance  float64            `json:"goldBalance" bson:"goldBalance"`
	Spread       float64            `json:"spread" bson:"spread"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// Admin is a shop operator account.
type Admin struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserName     string             `json:"userName" bson:"userName"`
	CompanyName  string             `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Contact      string             `json:"contact,omitempty" bson:"contact,omitempty"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Features     []string           `json:"features,omitempty" bson:"features,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// FCMToken is one registered push target.
type FCMToken struct {
	Token string `json:"token" bson:"token"`
}

// FCMTokenDoc holds every device token registered for one user.
type FCMTokenDoc struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	FCMTokens []FCMToken         `json:"fcmTokens" bson:"fcmTokens"`
}

// SpotRate holds an admin's live-rate spread configuration.
type SpotRate struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AdminID    primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	GoldSpread float64            `json:"goldSpread" bson:"goldSpread"`
	BidSpread  float64            `json:"bidSpread" bson:"bidSpread"`
	AskSpread  float64            `json:"askSpread" bson:"askSpread"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Banner struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AdminID   primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	Title     string             `json:"title" bson:"title"`
	ImageURL  string             `json:"imageUrl" bson:"imageUrl"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type News struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AdminID   primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Device is one activated installation, keyed by MAC address.
type Device struct {
	MacAddress string    `json:"macAddress" bson:"macAddress"`
	AddedAt    time.Time `json:"addedAt" bson:"addedAt"`
}

// DeviceDoc groups the devices activated for one admin.
type DeviceDoc struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AdminID primitive.ObjectID `json:"adminId" bson:"adminId"`
	Devices []Device           `json:"devices" bson:"devices"`
}
