package journey

import (
	"fmt"
	"strings"

	"github.com/playperu/worldtour/internal/travel"
)

const (
	cityAspect     = "9:16"
	souvenirAspect = "1:1"
)

var outfits = map[travel.Vibe]string{
	travel.VibeUrban:    "stylish streetwear, a fashionable trench coat or leather jacket, sunglasses on head",
	travel.VibeBeach:    "a floral summer dress or a swimsuit with a sarong, and a sun hat",
	travel.VibeHistoric: "elegant casual travel wear, a light blouse and long skirt, carrying a vintage camera",
	travel.VibeNature:   "sporty hiking gear, a fitted tank top and cargo pants, with a backpack",
	travel.VibeCold:     "a knitted sweater, a warm scarf, a wool coat and ear muffs",
	travel.VibeDesert:   "loose linen layers, a wide-brimmed hat and sunglasses",
}

func outfitFor(v travel.Vibe) string {
	if o, ok := outfits[v]; ok {
		return o
	}
	return outfits[travel.VibeUrban]
}

func cityPrompt(c travel.City, withPersona bool) string {
	subject := "the traveller in the reference photo"
	if withPersona {
		subject = "Ailisha, the travel companion in the reference photo"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a realistic, high quality vertical travel photo (9:16) of %s exploring %s, %s.\n", subject, c.Name, c.Country)
	b.WriteString("Reproduce the face from the reference photo exactly: face shape, eyes, nose, smile, hairstyle and skin tone must match.\n")
	fmt.Fprintf(&b, "Outfit: %s. The outfit may change, the face may not.\n", outfitFor(c.Vibe))
	b.WriteString("Pose: relaxed and happy, naturally exploring the city, for example walking through a street market, at a viewpoint or in a cafe.\n")
	fmt.Fprintf(&b, "Background: clearly %s. %s The atmosphere should feel %s.\n", c.Name, c.Description, c.Vibe)
	b.WriteString("Style: professional travel photography, vivid colours, natural light, social media composition.")
	return b.String()
}

func souvenirPrompt(c travel.City, l travel.Landmark, withPersona bool) string {
	var b strings.Builder
	if withPersona {
		b.WriteString("You are given two reference photos. Photo 1 is Ailisha, who stands on the right. Photo 2 is the player, who stands on the left.\n")
		fmt.Fprintf(&b, "Create a realistic wide-angle travel selfie (1:1) of the two of them together in front of %s in %s.\n", l.Name, c.Name)
		b.WriteString("Both faces must match their reference photo exactly. Ailisha looks cheerful and may point at the landmark; the player holds the camera.\n")
	} else {
		b.WriteString("You are given a reference photo of the player.\n")
		fmt.Fprintf(&b, "Create a realistic travel selfie (1:1) of the player in front of %s in %s. The face must match the reference photo exactly.\n", l.Name, c.Name)
	}
	fmt.Fprintf(&b, "Outfits: %s.\n", outfitFor(c.Vibe))
	fmt.Fprintf(&b, "The landmark: %s Frame it %s so it is clearly recognisable behind them.\n", l.Description, l.BestAngle)
	b.WriteString("Style: bright, natural light, candid holiday snapshot.")
	return b.String()
}

func diaryPrompt(nickname string, c travel.City, l travel.Landmark, withPersona bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, upbeat social media post (under 50 words) from %s about visiting %s in %s today. ", nickname, l.Name, c.Name)
	if withPersona {
		b.WriteString("Mention that travelling with Ailisha is great fun. ")
	}
	b.WriteString("Plain text, at most two emoji, no hashtags.")
	return b.String()
}

func fallbackDiary(c travel.City, l travel.Landmark) string {
	return fmt.Sprintf("Spent a wonderful day at %s in %s!", l.Name, c.Name)
}
