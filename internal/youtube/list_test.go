package youtube

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlayerResp = `{
  "playabilityStatus": {"status": "OK"},
  "captions": {
    "playerCaptionsTracklistRenderer": {
      "captionTracks": [
        {
          "baseUrl": "https://www.youtube.com/api/timedtext?v=x&lang=ko",
          "name": {"simpleText": "Korean"},
          "languageCode": "ko",
          "isTranslatable": true
        },
        {
          "baseUrl": "https://www.youtube.com/api/timedtext?v=x&lang=en&kind=asr",
          "name": {"runs": [{"text": "English (auto-generated)"}]},
          "languageCode": "en",
          "kind": "asr",
          "isTranslatable": false
        }
      ],
      "translationLanguages": [
        {"languageCode": "en"},
        {"languageCode": "ja"},
        {"languageCode": "zh"}
      ]
    }
  }
}`

func TestProjectTrackInfos(t *testing.T) {
	var playerResp innertubePlayerResp
	require.NoError(t, json.Unmarshal([]byte(samplePlayerResp), &playerResp))
	require.NotNil(t, playerResp.Captions)

	renderer := playerResp.Captions.PlayerCaptionsTracklistRenderer
	translations := make([]string, 0, len(renderer.TranslationLanguages))
	for _, tl := range renderer.TranslationLanguages {
		translations = append(translations, tl.LanguageCode)
	}

	infos := projectTrackInfos(renderer.CaptionTracks, translations)
	require.Len(t, infos, 2)

	assert.Equal(t, TrackInfo{
		Language:             "Korean",
		LanguageCode:         "ko",
		IsGenerated:          false,
		IsTranslatable:       true,
		TranslationLanguages: []string{"en", "ja", "zh"},
	}, infos[0])

	// Display name assembled from runs, no translation targets for
	// non-translatable tracks
	assert.Equal(t, TrackInfo{
		Language:             "English (auto-generated)",
		LanguageCode:         "en",
		IsGenerated:          true,
		IsTranslatable:       false,
		TranslationLanguages: []string{},
	}, infos[1])
}

func TestProjectTrackInfos_OrderPreserved(t *testing.T) {
	tracks := []innertubeCaptionTrack{
		{LanguageCode: "de"},
		{LanguageCode: "fr"},
		{LanguageCode: "es"},
	}

	infos := projectTrackInfos(tracks, nil)
	codes := make([]string, len(infos))
	for i, info := range infos {
		codes[i] = info.LanguageCode
	}
	assert.Equal(t, []string{"de", "fr", "es"}, codes)
}
