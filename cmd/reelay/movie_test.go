package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientMovie_Success(t *testing.T) {
	date := "2012-04-25"
	srv := newMockServer(t).
		ExpectPath("/movies/24428").
		ExpectGET().
		RespondJSON(MovieResponse{
			MovieID:     24428,
			Title:       "The Avengers",
			ReleaseDate: &date,
			Rating:      7.7,
			Summary:     "Earth's mightiest heroes.",
			DurationMS:  12.34,
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	movie, err := client.Movie(24428)

	require.NoError(t, err)
	assert.Equal(t, int64(24428), movie.MovieID)
	assert.Equal(t, "The Avengers", movie.Title)
	require.NotNil(t, movie.ReleaseDate)
	assert.Equal(t, "2012-04-25", *movie.ReleaseDate)
	assert.Equal(t, 7.7, movie.Rating)
	assert.Equal(t, 12.34, movie.DurationMS)
}

func TestClientMovie_NotFound(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/movies/999999").
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Movie not found","code":"NOT_FOUND"}`))
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Movie(999999)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Movie not found")
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestClientMovie_PlainError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusBadGateway, "bad gateway").
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Movie(603)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "bad gateway")
}

func TestClientMovie_NullReleaseDate(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(MovieResponse{
			MovieID: 550,
			Title:   "Unreleased",
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	movie, err := client.Movie(550)

	require.NoError(t, err)
	assert.Nil(t, movie.ReleaseDate)
}

func TestRunMovieCmd_InvalidID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-5", "3.5"} {
		err := runMovieCmd(movieCmd, []string{arg})
		require.Error(t, err, "expected error for %q", arg)
		assert.Contains(t, err.Error(), "invalid movie ID")
	}
}

func TestRunMovieCmd_Success(t *testing.T) {
	date := "1999-10-15"
	srv := newMockServer(t).
		ExpectPath("/movies/550").
		RespondJSON(MovieResponse{
			MovieID:     550,
			Title:       "Fight Club",
			ReleaseDate: &date,
			Rating:      8.4,
			Summary:     "An insomniac and a soap maker.",
			DurationMS:  0.05,
		}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	err := runMovieCmd(movieCmd, []string{"550"})
	require.NoError(t, err)
}

func TestMovieCmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "movie <movie-id>" {
			found = true
			break
		}
	}
	assert.True(t, found, "movie command should be registered")
}

func TestReleaseYear(t *testing.T) {
	date := "2012-04-25"
	assert.Equal(t, "2012", releaseYear(&date))

	short := "20"
	assert.Equal(t, "-", releaseYear(&short))
	assert.Equal(t, "-", releaseYear(nil))
}

func TestReleaseDateOrDash(t *testing.T) {
	date := "2012-04-25"
	assert.Equal(t, "2012-04-25", releaseDateOrDash(&date))
	assert.Equal(t, "-", releaseDateOrDash(nil))
}
