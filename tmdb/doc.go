// Package tmdb provides a typed client for The Movie Database (TMDB) v3 API.
//
// Every lookup issues exactly one GET request through a shared execution
// routine that unwraps the paginated envelope, classifies failures and logs
// failed responses.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(tmdb.DefaultBaseURL, apiKey, logger,
//		tmdb.WithLanguage("en-US"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	movie, found, err := client.Movies.FindByID(ctx, 603)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !found {
//		// 404 or another client error: nothing to show
//	}
//
// # Results
//
// Each method returns (value, found, error). found is false without an
// error when TMDB answers with a client error other than 401, so callers can
// tell "nothing here" apart from hard failures.
//
// # Error Handling
//
// Hard failures are returned as *Error carrying a Kind:
//
//   - KindNoConnection: no HTTP response was received
//   - KindInvalidAPIKey: TMDB answered 401
//   - KindServerError: TMDB answered 5xx
//
// They match the sentinels with errors.Is:
//
//	if errors.Is(err, tmdb.ErrInvalidAPIKey) {
//		// ask for a new key
//	}
//
// Failed requests that received a response are reported once to the
// configured HTTPLogger. Successful requests are not.
package tmdb
