package phonetic

// dictionary is ordered: compound lookups take the first match.
var dictionary = []entry{
	// Vowels
	{"a", Info{"Open front unrounded vowel", map[string][]string{"en": {"father", "car"}, "es": {"casa", "hablar"}, "fr": {"chat", "pas"}, "hi": {"aap", "ab"}}}},
	{"ā", Info{"Long open front unrounded vowel", map[string][]string{"hi": {"aap", "kaam"}}}},
	{"ɑ", Info{"Open back unrounded vowel", map[string][]string{"en": {"hot", "father"}, "fr": {"pas", "là"}}}},
	{"ɑr", Info{"Open back unrounded vowel + rhotic", map[string][]string{"en": {"car", "far"}}}},
	{"æ", Info{"Near-open front unrounded vowel", map[string][]string{"en": {"cat", "bad"}}}},
	{"ɛ", Info{"Open-mid front unrounded vowel", map[string][]string{"en": {"bed", "red"}, "fr": {"belle", "faire"}}}},
	{"e", Info{"Close-mid front unrounded vowel", map[string][]string{"es": {"este", "que"}, "fr": {"été", "les"}, "hi": {"ek", "mera"}}}},
	{"ə", Info{"Schwa - mid-central vowel", map[string][]string{"en": {"about", "sofa"}, "fr": {"le", "de"}}}},
	{"ər", Info{"Rhotacized mid-central vowel", map[string][]string{"en": {"her", "worker"}}}},
	{"ɜr", Info{"Open-mid central rounded vowel + rhotic", map[string][]string{"en": {"bird", "learn"}}}},
	{"i", Info{"Close front unrounded vowel", map[string][]string{"en": {"see", "me"}, "es": {"si", "mi"}, "fr": {"si", "ici"}}}},
	{"ɪ", Info{"Near-close near-front unrounded vowel", map[string][]string{"en": {"bit", "sit"}}}},
	{"o", Info{"Close-mid back rounded vowel", map[string][]string{"en": {"go", "no"}, "es": {"oso", "todo"}, "zh": {"hǎo (好)", "duō (多)"}}}},
	{"ɔ", Info{"Open-mid back rounded vowel", map[string][]string{"en": {"thought", "law"}, "fr": {"fort", "or"}}}},
	{"ɔ̃", Info{"Nasalized open-mid back rounded vowel", map[string][]string{"fr": {"bon", "long"}}}},
	{"u", Info{"Close back rounded vowel", map[string][]string{"en": {"blue", "you"}, "es": {"tu", "uno"}, "fr": {"vous", "tout"}}}},
	{"ʊ", Info{"Near-close near-back rounded vowel", map[string][]string{"en": {"book", "good"}}}},
	{"uː", Info{"Close back rounded vowel (long)", map[string][]string{"en": {"blue", "you"}}}},
	{"ʌ", Info{"Open-mid back unrounded vowel", map[string][]string{"en": {"cup", "luck"}}}},

	// Diphthongs
	{"aɪ", Info{"Diphthong - open front unrounded to close front unrounded", map[string][]string{"en": {"my", "side"}}}},
	{"aʊ", Info{"Diphthong - open front unrounded to close back rounded", map[string][]string{"en": {"how", "now"}}}},
	{"eɪ", Info{"Diphthong - close-mid front unrounded to close front unrounded", map[string][]string{"en": {"day", "say"}}}},
	{"oʊ", Info{"Diphthong - close-mid back rounded to close back rounded", map[string][]string{"en": {"go", "boat"}}}},

	// Consonants
	{"b", Info{"Voiced bilabial plosive", map[string][]string{"en": {"boy", "bad"}, "es": {"boca", "bien"}, "fr": {"bon", "bien"}, "hi": {"baat", "bahut"}}}},
	{"d", Info{"Voiced alveolar plosive", map[string][]string{"en": {"day", "do"}, "es": {"donde", "dar"}, "fr": {"dans", "de"}}}},
	{"ð", Info{"Voiced dental fricative", map[string][]string{"en": {"the", "this"}}}},
	{"f", Info{"Voiceless labiodental fricative", map[string][]string{"en": {"fun", "if"}, "es": {"fácil", "café"}, "fr": {"faire", "feu"}}}},
	{"g", Info{"Voiced velar plosive", map[string][]string{"en": {"go", "big"}, "es": {"gato", "grande"}, "fr": {"gare", "gâteau"}}}},
	{"ɡ", Info{"Voiced velar plosive", map[string][]string{"en": {"go", "big"}}}},
	{"h", Info{"Voiceless glottal fricative", map[string][]string{"en": {"hat", "ahead"}, "zh": {"hǎo (好)", "hē (喝)"}}}},
	{"j", Info{"Palatal approximant", map[string][]string{"en": {"yes", "you"}, "es": {"yo", "ya"}}}},
	{"k", Info{"Voiceless velar plosive", map[string][]string{"en": {"cat", "key"}, "es": {"casa", "que"}, "fr": {"qui", "quand"}}}},
	{"l", Info{"Alveolar lateral approximant", map[string][]string{"en": {"light", "play"}, "es": {"lado", "el"}, "fr": {"le", "il"}}}},
	{"m", Info{"Bilabial nasal", map[string][]string{"en": {"me", "mom"}, "es": {"madre", "mi"}, "fr": {"mère", "mon"}, "hi": {"mera", "main"}}}},
	{"n", Info{"Alveolar nasal", map[string][]string{"en": {"no", "in"}, "es": {"no", "en"}, "fr": {"non", "une"}, "hi": {"namaste", "nahi"}, "zh": {"nǐ (你)", "nà (那)"}}}},
	{"ŋ", Info{"Velar nasal", map[string][]string{"en": {"sing", "thing"}}}},
	{"p", Info{"Voiceless bilabial plosive", map[string][]string{"en": {"pen", "stop"}, "es": {"padre", "por"}, "fr": {"père", "pas"}}}},
	{"r", Info{"Alveolar approximant", map[string][]string{"en": {"red", "run"}, "es": {"rojo", "pero"}}}},
	{"s", Info{"Voiceless alveolar fricative", map[string][]string{"en": {"see", "pass"}, "es": {"sí", "casa"}, "fr": {"si", "passer"}, "hi": {"sab", "saath"}}}},
	{"t", Info{"Voiceless alveolar plosive", map[string][]string{"en": {"top", "stop"}, "es": {"tu", "tomar"}, "fr": {"tu", "table"}, "hi": {"tum", "tera"}}}},
	{"v", Info{"Voiced labiodental fricative", map[string][]string{"en": {"very", "have"}, "fr": {"vous", "voir"}}}},
	{"w", Info{"Labial-velar approximant", map[string][]string{"en": {"way", "win"}, "zh": {"wǒ (我)", "wàn (万)"}}}},
	{"z", Info{"Voiced alveolar fricative", map[string][]string{"en": {"zoo", "is"}, "fr": {"zéro", "maison"}}}},
	{"ʒ", Info{"Voiced postalveolar fricative", map[string][]string{"en": {"measure", "vision"}, "fr": {"je", "jour"}}}},
	{"ʃ", Info{"Voiceless postalveolar fricative", map[string][]string{"en": {"she", "ship"}, "fr": {"chaud", "chercher"}}}},
	{"θ", Info{"Voiceless dental fricative", map[string][]string{"en": {"think", "thin"}}}},
	{"ʁ", Info{"Voiced uvular fricative", map[string][]string{"fr": {"rouge", "Paris"}}}},
	{"tʃ", Info{"Voiceless postalveolar affricate", map[string][]string{"en": {"church", "watch"}}}},
	{"dʒ", Info{"Voiced postalveolar affricate", map[string][]string{"en": {"judge", "jam"}}}},

	// Spanish specific
	{"β", Info{"Voiced bilabial fricative", map[string][]string{"es": {"haber", "saber"}}}},
	{"ɾ", Info{"Alveolar tap", map[string][]string{"es": {"pero", "caro"}}}},
	{"ʎ", Info{"Palatal lateral approximant", map[string][]string{"es": {"llamar", "llover"}}}},

	// Mandarin specific
	{"ǐ", Info{"Close front unrounded vowel with rising tone", map[string][]string{"zh": {"nǐ (你)", "lǐ (里)"}}}},
	{"ǎ", Info{"Open front unrounded vowel with dipping tone", map[string][]string{"zh": {"hǎo (好)", "mǎ (马)"}}}},
	{"à", Info{"Open front unrounded vowel with falling tone", map[string][]string{"zh": {"mà (骂)", "dà (大)"}}}},

	// Hindi specific
	{"ʰ", Info{"Aspiration", map[string][]string{"hi": {"bʰai", "kʰana"}}}},
	{"ɛ̃", Info{"Nasalized open-mid front unrounded vowel", map[string][]string{"hi": {"hɛ̃", "mɛ̃"}}}},

	// Stress and other markers
	{"ˈ", Info{"Primary stress on following syllable", map[string][]string{"en": {"aˈbout", "beˈfore"}, "es": {"esˈtá", "haˈblar"}, "fr": {"aˈlors", "parˈfait"}}}},
	{"ˌ", Info{"Secondary stress on following syllable", map[string][]string{"en": {"ˌinterˈnational", "ˌunderˈstanding"}}}},
	{".", Info{"Syllable boundary", map[string][]string{"en": {"re.act", "co.op"}}}},
}
