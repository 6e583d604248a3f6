package backends

import (
	"treasure-map-service/internal/config"
)

const (
	YandexName   = "yandex"
	YandexAPIURL = "//api-maps.yandex.ru/2.1/"
)

// Yandex drives the widget with the Yandex Maps 2.1 API. The UI language
// follows the host language code.
type Yandex struct {
	Base
}

func NewYandex(settings config.TreasureMap) (*Yandex, error) {
	b, err := newBase(YandexName, YandexAPIURL, settings)
	if err != nil {
		return nil, err
	}
	return &Yandex{Base: b}, nil
}

func (y *Yandex) APIJS() (string, error) {
	lang := y.settings.LanguageCode
	if lang == "" {
		lang = config.DefaultLanguageCode
	}

	q := query{}
	q.add("lang", lang)
	if key := y.APIKey(); key != "" {
		q.add("pikey", key)
	}

	return y.APIURL() + "?" + q.encode(), nil
}
