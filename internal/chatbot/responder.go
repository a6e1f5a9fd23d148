// Package chatbot implements the rule-based responder behind the site's
// chat widget. Matching is literal substring matching against a fixed
// phrase list over the lowercased visitor message; first matching rule
// wins. There is no language model behind it.
package chatbot

import "strings"

// Reply is the bot's answer to one visitor message. Booking marks replies
// that should be followed by a booking-form link.
type Reply struct {
	Text    string
	Booking bool
}

// Greeting is the message the widget shows when a conversation opens.
const Greeting = "Hello! I'm the Benbol Pharmacy assistant. How can I help you today? " +
	"You can ask about our services, hours, or any general questions."

// fallback answers any message no rule matched.
const fallback = "I'm here to help! You can ask me about our services, operating hours, " +
	"prescription refills, or any other questions. For specific inquiries, feel free to call us at 09167858304."

type rule struct {
	keywords []string
	reply    Reply
}

// Rule order matters: "contact" must not shadow "consultation", and the
// greeting rule sits late so "hi" inside another word's question does not
// preempt a real topic.
var rules = []rule{
	{
		keywords: []string{"hour", "open", "time"},
		reply:    Reply{Text: "We are open Monday-Saturday from 8:00 AM to 8:00 PM, and Sunday from 9:00 AM to 5:00 PM."},
	},
	{
		keywords: []string{"location", "address", "where"},
		reply:    Reply{Text: "You can find us at Vickie's Plaza, Lekki-Epe Expressway, Opposite Crown Estate, Sangotedo, Lagos State. Feel free to call us at 09167858304 for directions."},
	},
	{
		keywords: []string{"phone", "call", "contact"},
		reply:    Reply{Text: "You can reach us at 09167858304 during business hours. We are always happy to help!"},
	},
	{
		keywords: []string{"service"},
		reply:    Reply{Text: "We offer Prescription Medications, OTC Products, Vitamins & Supplements, Walking Aids, Pharmaceutical Counselling, and Skin Care products. What would you like to know more about?"},
	},
	{
		keywords: []string{"prescription", "refill", "medication"},
		reply:    Reply{Text: "We can help with prescription refills! You can submit a refill request online through our website, call us at 09167858304, or visit us in person. Most prescriptions are ready within 15-30 minutes."},
	},
	{
		keywords: []string{"insurance"},
		reply:    Reply{Text: "Yes, we accept most major insurance plans. Please bring your insurance card with you, and we will verify your coverage and process your claims."},
	},
	{
		keywords: []string{"delivery"},
		reply:    Reply{Text: "We offer home delivery services within our service area. Please contact us at 09167858304 to arrange delivery for your medications and health products."},
	},
	{
		keywords: []string{"appointment", "consultation", "counselling", "book"},
		reply: Reply{
			Text:    "You can book a consultation with our pharmacists through our online booking form or by calling 09167858304. We offer pharmaceutical counselling, medication reviews, and health consultations.",
			Booking: true,
		},
	},
	{
		keywords: []string{"vitamin", "supplement"},
		reply:    Reply{Text: "We carry a wide range of vitamins and supplements including multivitamins, specialty supplements, herbal remedies, and sports nutrition. Our pharmacists can help you choose the right supplements for your needs."},
	},
	{
		keywords: []string{"skincare", "skin"},
		reply:    Reply{Text: "We offer medical-grade skincare products including anti-aging solutions, acne treatments, moisturizers, and sun protection. Our staff can provide personalized skincare recommendations."},
	},
	{
		keywords: []string{"walking aid", "mobility", "wheelchair"},
		reply:    Reply{Text: "We stock various mobility aids including canes, crutches, walkers, rollators, and wheelchairs. We provide professional fitting and consultation to ensure you get the right equipment."},
	},
	{
		keywords: []string{"thank", "thanks", "appreciate"},
		reply:    Reply{Text: "You're welcome! Is there anything else I can help you with today?"},
	},
	{
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
		reply:    Reply{Text: "Hello! How can I assist you today?"},
	},
	{
		keywords: []string{"bye", "goodbye"},
		reply:    Reply{Text: "Thank you for contacting Benbol Pharmacy! Have a great day!"},
	},
}

// Respond returns the bot's reply for one visitor message.
func Respond(message string) Reply {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}
	return Reply{Text: fallback}
}
