package brand

// Brand is a corpus entry: a canonical brand name and the registered domains it legitimately owns.
// A brand without domains owns name + ".com".
type Brand struct {
	Name    string   `yaml:"name"`
	Domains []string `yaml:"domains"`
}

// DefaultCorpus returns the built-in brand list.
func DefaultCorpus() []Brand {
	names := []string{
		"google", "microsoft", "apple", "amazon", "facebook", "paypal", "netflix", "instagram",
		"twitter", "linkedin", "dropbox", "yahoo", "chase", "bankofamerica", "wellsfargo",
		"citibank", "hsbc", "barclays", "americanexpress", "mastercard", "visa", "outlook",
		"gmail", "icloud", "office365", "onedrive", "adobe", "spotify", "steam",
		"epicgames", "blizzard", "ubisoft", "nintendo", "playstation", "xbox", "twitch",
		"youtube", "walmart", "target", "ebay", "aliexpress", "fedex", "usps",
	}

	extra := map[string][]string{
		"google":          {"google.com", "googleapis.com", "googleusercontent.com", "gstatic.com"},
		"microsoft":       {"microsoft.com", "microsoftonline.com", "live.com"},
		"amazon":          {"amazon.com", "amazonaws.com"},
		"facebook":        {"facebook.com", "fb.com"},
		"twitter":         {"twitter.com", "x.com"},
		"chase":           {"chase.com", "jpmorganchase.com"},
		"americanexpress": {"americanexpress.com", "amex.com"},
		"gmail":           {"gmail.com", "google.com"},
		"office365":       {"office365.com", "office.com", "microsoft.com"},
		"onedrive":        {"onedrive.com", "live.com", "microsoft.com"},
		"outlook":         {"outlook.com", "live.com", "microsoft.com"},
		"steam":           {"steampowered.com", "steamcommunity.com"},
		"playstation":     {"playstation.com", "sony.com"},
		"xbox":            {"xbox.com", "microsoft.com"},
		"youtube":         {"youtube.com", "youtu.be", "google.com"},
		"icloud":          {"icloud.com", "apple.com"},
		"aliexpress":      {"aliexpress.com", "alibaba.com"},
	}

	out := make([]Brand, 0, len(names))
	for _, n := range names {
		out = append(out, Brand{Name: n, Domains: extra[n]})
	}

	return out
}

// Names returns the brand names of corpus in order.
func Names(corpus []Brand) []string {
	out := make([]string, 0, len(corpus))
	for _, b := range corpus {
		out = append(out, b.Name)
	}

	return out
}
