package auth

func browser(url string) (string, []string, error) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
}
