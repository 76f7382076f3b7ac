package fakebackend

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRecordNotFound     = errors.New("record not found")
	ErrUnknownKind        = errors.New("unknown resource kind")
)

// Messages sent back in {"message": ...} bodies. They are the ones the
// website backend answers with.
const (
	msgInvalidJSON        = "Requête invalide"
	msgMissingFields      = "Veuillez remplir tous les champs."
	msgEmailTaken         = "Cet email est déjà utilisé."
	msgAccountCreated     = "Compte créé avec succès !"
	msgInvalidCredentials = "Identifiants invalides"
	msgUnauthorized       = "Non autorisé"
	msgTokenExpired       = "Session expirée"
	msgNotFound           = "Ressource introuvable"
	msgUnknownResource    = "Ressource inconnue"
	msgInternal           = "Erreur interne du serveur"
	msgMessageRead        = "Message marqué comme lu"
	msgDeleted            = "Supprimé"
	msgMessageSent        = "Message envoyé"
)
