package domainlist

import "github.com/nephila016/emailcanon/internal/classifier"

// Manually curated free mailbox domains, merged into every load.
var manualFree = []string{
	// Google, Microsoft, Yahoo
	"gmail.com", "googlemail.com",
	"outlook.com", "hotmail.com", "hotmail.co.uk", "hotmail.fr", "hotmail.de", "hotmail.it", "hotmail.es",
	"live.com", "live.co.uk", "live.fr", "live.de", "msn.com",
	"yahoo.com", "yahoo.co.uk", "yahoo.fr", "yahoo.de", "yahoo.it", "yahoo.es", "yahoo.co.in", "yahoo.ca",
	"yahoo.com.au", "yahoo.com.br", "yahoo.co.jp", "ymail.com", "rocketmail.com",

	// AOL/Verizon, Apple, Proton, Zoho
	"aol.com", "aol.co.uk", "aim.com", "verizon.net",
	"icloud.com", "me.com", "mac.com",
	"protonmail.com", "protonmail.ch", "proton.me", "pm.me",
	"zoho.com", "zohomail.com",

	// Mail.com family
	"mail.com", "email.com", "usa.com", "post.com", "europe.com", "asia.com", "consultant.com", "engineer.com",

	// GMX, Yandex, Mail.ru
	"gmx.com", "gmx.net", "gmx.de", "gmx.at", "gmx.ch",
	"yandex.com", "yandex.ru", "yandex.ua", "ya.ru",
	"mail.ru", "inbox.ru", "bk.ru", "list.ru",

	// Asia
	"qq.com", "163.com", "126.com", "sina.com", "sina.cn", "sohu.com", "aliyun.com", "foxmail.com",
	"naver.com", "daum.net", "hanmail.net", "rediffmail.com",

	// Privacy-focused
	"tutanota.com", "tutanota.de", "tutamail.com", "tuta.io",
	"fastmail.com", "fastmail.fm", "hey.com", "hushmail.com", "runbox.com", "mailfence.com",
	"disroot.org", "riseup.net",

	// Regional ISPs and portals
	"web.de", "freenet.de", "t-online.de", "libero.it", "virgilio.it",
	"free.fr", "orange.fr", "laposte.net", "sfr.fr", "wanadoo.fr",
	"wp.pl", "o2.pl", "interia.pl", "onet.pl", "seznam.cz", "centrum.cz",
	"rambler.ru", "ukr.net", "i.ua",
	"walla.co.il", "walla.com",
	"cox.net", "att.net", "sbcglobal.net", "bellsouth.net", "comcast.net", "charter.net", "earthlink.net", "juno.com",
	"shaw.ca", "rogers.com", "sympatico.ca", "telus.net",
	"btinternet.com", "ntlworld.com", "sky.com", "blueyonder.co.uk", "talktalk.net", "virginmedia.com",
	"bigpond.com", "optusnet.com.au",
	"lycos.com", "excite.com", "netscape.net", "inbox.com",
}

// Manually curated disposable domains, merged into every load.
var manualDisposable = []string{
	"10minutemail.com", "10minutemail.net",
	"guerrillamail.com", "guerrillamail.net", "guerrillamail.org", "sharklasers.com",
	"mailinator.com", "mailinator.net",
	"tempmail.com", "tempmail.org", "temp-mail.org", "tempmailo.com",
	"throwawaymail.com", "throwaway.email", "test.com", "trashmail.com", "trashmail.de",
	"yopmail.com", "yopmail.fr",
	"getnada.com", "dispostable.com", "maildrop.cc",
	"mailnesia.com", "mintemail.com", "mohmal.com",
	"fakeinbox.com", "emailondeck.com", "spamgourmet.com",
}

// Builtin returns the manually curated lists alone.
func Builtin() *Lists {
	return &Lists{
		Disposable: classifier.NewDomainSet(manualDisposable...),
		Free:       classifier.NewDomainSet(manualFree...),
		Sources: []SourceStats{
			{Name: "manual", Kind: KindDisposable, Domains: len(manualDisposable)},
			{Name: "manual", Kind: KindFree, Domains: len(manualFree)},
		},
	}
}
