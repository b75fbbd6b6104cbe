package sentiment

// Turkish sentiment lexicon. The three sets are static and never mutated after
// initialization, so they are safe for concurrent readers. Positive and negative
// sets must stay disjoint.

var positiveWords = []string{
	// Duygular
	"mutlu", "mutluluk", "sevinç", "neşe", "neşeli", "keyif", "keyifli", "harika", "muhteşem", "mükemmel",
	"güzel", "süper", "fevkalade", "olağanüstü", "şahane", "enfes", "efsane", "inanılmaz",
	"huzur", "huzurlu", "sakin", "rahat", "özgür", "umut", "umutlu", "iyimser",

	// Başarı
	"başarı", "başardım", "başardık", "kazandım", "kazandık", "başarılı", "gurur", "gururlu",
	"tamamladım", "bitirdim", "yaptım", "ilerledim", "gelişim", "gelişme", "ilerleme",

	// Sosyal
	"sevgi", "seviyorum", "aşk", "arkadaş", "arkadaşlık", "dostluk", "dost", "aile",
	"minnettar", "teşekkür", "şükür", "beraber", "birlikte",

	// Aktiviteler
	"eğlence", "eğlendim", "dinlendim", "tatil", "gezi", "seyahat", "kutlama",
	"hediye", "sürpriz", "parti", "festival",

	// Sağlık
	"sağlıklı", "enerjik", "fit", "aktif", "dinç", "zinde",

	// Genel pozitif
	"iyi", "iyiyim", "hoş", "tatlı", "şirin", "değerli", "özel", "benzersiz",
	"kolay", "rahatça", "sorunsuz", "problemsiz", "verimli", "üretken",

	// Emojiler
	"😊", "😄", "😃", "🎉", "❤️", "💪", "🌟", "✨", "👍", "🥳", "😍", "🙏",
}

var negativeWords = []string{
	// Duygular
	"üzgün", "üzüntü", "mutsuz", "mutsuzluk", "kötü", "berbat", "korkunç", "rezalet",
	"sinir", "sinirli", "öfke", "öfkeli", "kızgın", "stres", "stresli", "gergin",
	"kaygı", "kaygılı", "endişe", "endişeli", "korku", "korkulu", "panik",
	"depresyon", "depresif", "bunalım", "sıkıntı", "sıkıntılı", "bezgin",

	// Başarısızlık
	"başarısız", "başarısızlık", "kaybettim", "kaybettik", "yapamadım", "yapamıyorum",
	"beceremedim", "beceremiyorum", "sınavı", "kaldım", "reddedildim", "eledim",

	// Sosyal
	"yalnız", "yalnızlık", "terk", "ayrılık", "kavga", "tartışma", "küs",
	"ihanet", "hayal", "kırıklığı",

	// Sağlık
	"hasta", "hastalık", "ağrı", "acı", "yorgun", "yorgunluk", "bitkin", "tükenmişlik",
	"uykusuz", "uykusuzluk", "baş", "ağrısı",

	// Genel negatif
	"zor", "zorlu", "imkansız", "umutsuz", "çaresiz", "sorun", "problem",
	"hata", "yanlış", "eksik", "yetersiz",
	"nefret", "bıktım", "usandım", "istemiyorum", "dayanamıyorum",

	// Emojiler
	"😢", "😭", "😞", "😔", "😡", "😠", "💔", "😰", "😨", "🤢", "😤", "😫",
}

// Güçlendirici kelimeler: a hit doubles the weight of the sentiment word that follows.
var intensifierWords = []string{
	"çok", "aşırı", "son", "derece", "gerçekten", "kesinlikle", "tamamen", "oldukça",
	"fazla", "fazlasıyla", "hiç", "asla", "her", "zaman", "sürekli", "hep",
}

var (
	positiveSet    = makeSet(positiveWords)
	negativeSet    = makeSet(negativeWords)
	intensifierSet = makeSet(intensifierWords)
)

func makeSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
