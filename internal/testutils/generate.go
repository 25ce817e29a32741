package testutils

//go:generate mockgen -destination=mocks/dicemock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-toolkit/dice Roller
