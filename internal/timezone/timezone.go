package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Fuso do relógio da loja; ajustado uma vez no boot via SetDefault.
var shopLocation = mustLocation(DefaultTimezone)

func mustLocation(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	return mustLocation(DefaultTimezone)
}

// SetDefault aplica o SHOP_TIMEZONE configurado. Vazio ou inválido
// mantém o padrão da loja.
func SetDefault(tz string) {
	shopLocation = Location(tz)
}

func Now() time.Time {
	return time.Now().In(shopLocation)
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
