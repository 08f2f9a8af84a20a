package request_params

import "bomapay-gateway/utils/configs"

func GetBindings(cfg configs.Config, clientId string) Form {
	form := credentials(cfg)
	form.Set("clientId", clientId)
	return form
}

func GetBindingsByCardOrId(cfg configs.Config, pan string) Form {
	form := credentials(cfg)
	form.Set("pan", pan)
	return form
}

func BindCard(cfg configs.Config, bindingId string) Form {
	form := credentials(cfg)
	form.Set("bindingId", bindingId)
	return form
}

func UnBindCard(cfg configs.Config, bindingId string) Form {
	form := credentials(cfg)
	form.Set("bindingId", bindingId)
	return form
}

// ExtendBinding sets a new expiry (YYYYMM) on a stored card.
func ExtendBinding(cfg configs.Config, bindingId, newExpiry string) Form {
	form := credentials(cfg)
	form.Set("bindingId", bindingId)
	form.Set("newExpiry", newExpiry)
	form.Set("language", cfg.Language)
	return form
}
