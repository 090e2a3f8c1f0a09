package auth

func browser(url string) (string, []string, error) {
	return "open", []string{url}, nil
}
