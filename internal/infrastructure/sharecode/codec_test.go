package sharecode

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

func sample() *profile.Profile {
	p := profile.New(profile.NormalizeUsername("rakib"), "secret", time.Now())
	p.XP = 80
	p.Progress.CompletedTopics["Physics 1st-Ch2: Vectors-T-01: Vector Types"] = true
	p.Progress.ChapterMilestones["Physics 1st-Ch2: Vectors-theory-familiar"] = true
	return p
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	token, err := Encode(sample())
	require.NoError(t, err)

	got, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, profile.Username("rakib"), got.Username)
	assert.Equal(t, 80, got.XP)
	assert.True(t, got.Progress.CompletedTopics["Physics 1st-Ch2: Vectors-T-01: Vector Types"])
	assert.True(t, got.Progress.ChapterMilestones["Physics 1st-Ch2: Vectors-theory-familiar"])
}

func TestEncode_StripsSecrets(t *testing.T) {
	p := sample()
	p.FollowedUsers = []profile.Profile{{Username: "peer", Password: "leak"}}

	token, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(token)
	require.NoError(t, err)
	assert.Empty(t, got.Password)
	assert.Empty(t, got.FollowedUsers)
}

func TestDecode_LegacyClientToken(t *testing.T) {
	// btoa(JSON.stringify({...user, password: undefined, followedUsers: undefined}))
	legacy := `{"username":"nadia","xp":130,"progress":{"completedTopics":{"a-b-c":true},"chapterCheckboxes":{"a-b-theory-familiar":true}},"lastActive":1767225600000}`
	token := base64.StdEncoding.EncodeToString([]byte(legacy))

	got, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, profile.Username("nadia"), got.Username)
	assert.Equal(t, 130, got.XP)
	assert.True(t, got.Progress.CompletedTopics["a-b-c"])
	assert.True(t, got.Progress.ChapterMilestones["a-b-theory-familiar"])
	assert.Equal(t, int64(1767225600000), got.LastActive)
}

func TestDecode_UnicodeRoundTrip(t *testing.T) {
	p := profile.New(profile.NormalizeUsername("রাকিব"), "", time.Now())
	token, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, profile.NormalizeUsername("রাকিব"), got.Username)
}

func TestDecode_Garbage(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"!!!not base64!!!",
		base64.StdEncoding.EncodeToString([]byte("not json")),
		base64.StdEncoding.EncodeToString([]byte(`{"xp":5}`)), // no username
		base64.StdEncoding.EncodeToString([]byte(`[]`)),
	} {
		_, err := Decode(input)
		assert.ErrorIs(t, err, shared.ErrInvalidToken, "input %q", input)
	}
}

func TestDecode_PaddingVariants(t *testing.T) {
	token, err := Encode(sample())
	require.NoError(t, err)

	unpadded := token
	for len(unpadded) > 0 && unpadded[len(unpadded)-1] == '=' {
		unpadded = unpadded[:len(unpadded)-1]
	}

	got, err := Decode(unpadded)
	require.NoError(t, err)
	assert.Equal(t, profile.Username("rakib"), got.Username)
}

func TestShareLink_And_ExtractToken(t *testing.T) {
	p := sample()
	link, err := ShareLink("https://hub.example.com/", p)
	require.NoError(t, err)
	assert.Contains(t, link, FragmentPrefix)

	token, ok := ExtractToken(link)
	require.True(t, ok)

	got, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, profile.Username("rakib"), got.Username)

	// Bare tokens pass through untouched.
	raw, ok := ExtractToken(token)
	assert.True(t, ok)
	assert.Equal(t, token, raw)

	_, ok = ExtractToken("   ")
	assert.False(t, ok)
}
