package externals

import (
	"context"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"log"
	"os"
	"sync"
)

var (
	firebaseApp *firebase.App
	once        sync.Once
)
var testMode string

func InitializeFirebase(testModeArg string) *firebase.App {
	testMode = testModeArg
	if testMode != "real" {
		// no credentials needed, token verification is bypassed
		return nil
	}

	once.Do(func() {
		credentialsFile := os.Getenv("FIREBASE_CREDENTIALS_FILE")
		if credentialsFile == "" {
			credentialsFile = "serviceAccountKey.json"
		}

		opt := option.WithCredentialsFile(credentialsFile)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Fatalf("Error initializing Firebase Admin SDK: %v", err)
		}
		firebaseApp = app
	})

	return firebaseApp
}

func VerifyFirebaseToken(ctx context.Context, idToken string) (string, error) {
	if testMode == "real" {
		app := InitializeFirebase(testMode)

		authClient, err := app.Auth(ctx)
		if err != nil {
			return "", err
		}

		token, err := authClient.VerifyIDToken(ctx, idToken)
		if err != nil {
			return "", err
		}

		return token.UID, nil
	}

	// if test mode, return a fake value
	return "firebase_uid", nil
}
