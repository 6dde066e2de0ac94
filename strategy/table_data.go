package strategy

// tableHex is the frozen 91x41 strategy lookup table, one run of 4 hex
// characters per cell: bits k (1 char), redundancy r (2 chars), and the
// (alpha-1.0)*10 coefficient (1 char). Row m runs over M in [10, 100],
// column eps runs over floor(100*epsilon) in [0, 40].
//
// The table is reproduced byte-for-byte from the reference encoder's
// embedded constant; it was computed offline by exhaustive simulation
// and is not meant to be re-derived here.
const tableHex = "" +
		"40104010402a5020402f40304030403540354035404040404040404a4050405040504060406a407a40604070506540804080" +
		"4080408040ba40a040a040b040c040c040d0412550e0414541754175419551204010401040204020402f4020403040304030" +
		"404040404040503a504040504050405f40604060505a4070407040854080408f409040904090409040a040b050b050ca50d0" +
		"511a412551354175418541954140501050205020502050205030503a503a5030603a504050405040504a504050555055505a" +
		"50605060506050655070507f5080508050805090509050a050a050da50e550f5510551155135513551455110514050105020" +
		"5020502050205030503a503a5030603a504050405040504a504050555055505a50605060506050655070507f508050805080" +
		"5090509050a050a050da50e550f55105511551355135514551105140501050205020502050205030503a503a5030603a5040" +
		"50405040504a504050555055505a50605060506050655070507f5080508050805090509050a050a050da50e550f551055115" +
		"51355135514551105140501050205020502050205030503a503a5030603a504050405040504a504050555055505a50605060" +
		"506050655070507f5080508050805090509050a050a050da50e550f551055115513551355145511051405010502050205020" +
		"50205030503a503a5030603a504050405040504a504050555055505a50605060506050655070507f50805080508050905090" +
		"50a050a050da50e550f55105511551355135514551105140501050205020502050205030503a503a5030603a504050405040" +
		"504a504050555055505a50605060506050655070507f5080508050805090509050a050a050da50e550f55105511551355135" +
		"514551105140501050205020502050205030503a503a5030603a504050405040504a504050555055505a5060506050605065" +
		"5070507f5080508050805090509050a050a050da50e550f55105511551355135514551105140501050205020502050205030" +
		"503a503a5030603a504050405040504a504050555055505a50605060506050655070507f5080508050805090509050a050a0" +
		"50da50e550f55105511551355135514551105140501050205020502050205030503a503a5030603a504050405040504a5040" +
		"50555055505a50605060506050655070507f5080508050805090509050a050a050da50e550f5510551155135513551455110" +
		"5140501050205020502a502050305030503a503a60355040504f5040504a50455050505050555060605a506050605060607a" +
		"5080508050905090509050a050c550ea50f5511a5115513551355135610051205140501050205020502a502050305030503a" +
		"503a60355040504f5040504a50455050505050555060605a506050605060607a5080508050905090509050a050c550ea50f5" +
		"511a5115513551355135610051205140501050205020502a502050305030503a503a60355040504f5040504a504550505050" +
		"50555060605a506050605060607a5080508050905090509050a050c550ea50f5511a51155135513551356100512051405010" +
		"50205020502a502050305030503a503a60355040504f5040504a50455050505050555060605a506050605060607a50805080" +
		"50905090509050a050c550ea50f5511a5115513551355135610051205140501050205020502a502050305030503a503a6035" +
		"5040504f5040504a50455050505050555060605a506050605060607a5080508050905090509050a050c550ea50f5511a5115" +
		"51355135513561005120514050105020502a502f502a502a50305030503050305040504050405045504050405055505f5060" +
		"5065507560605070507050955080509f50af50bf50d550d550ea50fa60f560d051155135513561005120513050105020502a" +
		"502f502a502a50305030503050305040504050405045504050405055505f50605065507560605070507050955080509f50af" +
		"50bf50d550d550ea50fa60f560d051155135513561005120513050105020502a502f502a502a503050305030503050405040" +
		"50405045504050405055505f50605065507560605070507050955080509f50af50bf50d550d550ea50fa60f560d051155135" +
		"513561005120513050105020502050205030503050305030503a603a603a50405045504a50456045505a506050605060606a" +
		"6060606050806075509a509f5090509050a050d550e560e55105610561056105514551105110512050105020502050205030" +
		"503050305030503a603a603a50405045504a50456045505a506050605060606a6060606050806075509a509f5090509050a0" +
		"50d550e560e55105610561056105514551105110512050105010502a5020503050305030503a503f603a603a504050456040" +
		"5050505a5060506050605060506050706060508050805080509050a550a550da60b050d560e560f560f56105512551455145" +
		"5110512050105020502050205020503a503a50305030603a50405040504050405040505550605060506f5060507060605070" +
		"50705090509a50906080609050c550d560b060d5610561056105512551355145512051405010502050205020602a50305030" +
		"5030603050306030504f6040604050505050505f506050605060507f507560655070607060806080508050b550b560c550da" +
		"60d560e56105610a610551355145513051305010502050205020503050306030603a603a603a603a603f6045604a50505065" +
		"5060605a506050606065507f508a5070509a608050a560806090609060c560c560e560c061056105610560f0514551205130" +
		"60106020602a602a603560306030603a603a604060406040604060406050605060506055605a606560656065606a60706070" +
		"6080609a60a060a060bf60c560e560e56105610561056105610561006100610560106020602a602a603560306030603a603a" +
		"604060406040604060406050605060506055605a606560656065606a607060706080609a60a060a060bf60c560e560e56105" +
		"610561056105610561006100610560106020602a602a603560306030603a603a604060406040604060406050605060506055" +
		"605a606560656065606a607060706080609a60a060a060bf60c560e560e56105610561056105610561006100610560106020" +
		"602a602a603560306030603a603a604060406040604060406050605060506055605a606560656065606a607060706080609a" +
		"60a060a060bf60c560e560e56105610561056105610561006100610560106020602a602a603560306030603a603a60406040" +
		"6040604060406050605060506055605a606560656065606a607060706080609a60a060a060bf60c560e560e5610561056105" +
		"6105610561006100610560106020602a602a603560306030603a603a604060406040604060406050605060506055605a6065" +
		"60656065606a607060706080609a60a060a060bf60c560e560e5610561056105610561056100610061056010602a602a6020" +
		"60306030603a603060306030603a60356040604560406050605f605f605f606a606060606060608060806080608060a560ba" +
		"60b560b560d560d560fa60f56105610561006100610061006010602a602a602060306030603a603060306030603a60356040" +
		"604560406050605f605f605f606a606060606060608060806080608060a560ba60b560b560d560d560fa60f5610561056100" +
		"6100610061006010602a602a602060306030603a603060306030603a60356040604560406050605f605f605f606a60606060" +
		"6060608060806080608060a560ba60b560b560d560d560fa60f56105610561006100610061006010602a602a602060306030" +
		"603a603060306030603a60356040604560406050605f605f605f606a606060606060608060806080608060a560ba60b560b5" +
		"60d560d560fa60f56105610561006100610061006010602a602a602060306030603a603060306030603a6035604060456040" +
		"6050605f605f605f606a606060606060608060806080608060a560ba60b560b560d560d560fa60f561056105610061006100" +
		"61006010602a602a602060306030603a603060306030603a60356040604560406050605f605f605f606a6060606060606080" +
		"60806080608060a560ba60b560b560d560d560fa60f56105610561006100610061006010602a602a602060306030603a6030" +
		"60306030603a60356040604560406050605f605f605f606a606060606060608060806080608060a560ba60b560b560d560d5" +
		"60fa60f56105610561006100610061006010602a602a602060306030603a603060306030603a60356040604560406050605f" +
		"605f605f606a606060606060608060806080608060a560ba60b560b560d560d560fa60f56105610561006100610061006010" +
		"602a602a602060306030603a603060306030603a60356040604560406050605f605f605f606a606060606060608060806080" +
		"608060a560ba60b560b560d560d560fa60f56105610561006100610061006010602a602a602060306030603a603060306030" +
		"603a60356040604560406050605f605f605f606a606060606060608060806080608060a560ba60b560b560d560d560fa60f5" +
		"61056105610061006100610060106020602a602a603a6030603a60306030603f6040604f604a6040604a6045605a60556050" +
		"6055605a6060606060856080608f609f60a5609060b560a060d560f560f560f561056105610061006100610060106020602a" +
		"602a603a6030603a60306030603f6040604f604a6040604a6045605a605560506055605a6060606060856080608f609f60a5" +
		"609060b560a060d560f560f560f561056105610061006100610060106020602a602a603a6030603a60306030603f6040604f" +
		"604a6040604a6045605a605560506055605a6060606060856080608f609f60a5609060b560a060d560f560f560f561056105" +
		"610061006100610060106020602a602a603a6030603a60306030603f6040604f604a6040604a6045605a605560506055605a" +
		"6060606060856080608f609f60a5609060b560a060d560f560f560f561056105610061006100610060106020602a602a603a" +
		"6030603a60306030603f6040604f604a6040604a6045605a605560506055605a6060606060856080608f609f60a5609060b5" +
		"60a060d560f560f560f561056105610061006100610060106020602a602a603a6030603a60306030603f6040604f604a6040" +
		"604a6045605a605560506055605a6060606060856080608f609f60a5609060b560a060d560f560f560f56105610561006100" +
		"6100610060106020602a602a603a6030603a60306030603f6040604f604a6040604a6045605a605560506055605a60606060" +
		"60856080608f609f60a5609060b560a060d560f560f560f561056105610061006100610060106020602a602a603a6030603a" +
		"60306030603f6040604f604a6040604a6045605a605560506055605a6060606060856080608f609f60a5609060b560a060d5" +
		"60f560f560f561056105610061006100610060106020602a602a603a6030603a60306030603f6040604f604a6040604a6045" +
		"605a605560506055605a6060606060856080608f609f60a5609060b560a060d560f560f560f5610561056100610061006100" +
		"60106020602a602a603a6030603a60306030603f6040604f604a6040604a6045605a605560506055605a6060606060856080" +
		"608f609f60a5609060b560a060d560f560f560f561056105610061006100610060106020602060256020602060306030603a" +
		"604060406040604060406045605060506055605a605a6060606060706070608060806080609060b560b560b560d560fa60e5" +
		"6105610560f0610061006100610060106020602060256020602060306030603a604060406040604060406045605060506055" +
		"605a605a6060606060706070608060806080609060b560b560b560d560fa60e56105610560f0610061006100610060106020" +
		"602060256020602060306030603a604060406040604060406045605060506055605a605a6060606060706070608060806080" +
		"609060b560b560b560d560fa60e56105610560f0610061006100610060106020602060256020602060306030603a60406040" +
		"6040604060406045605060506055605a605a6060606060706070608060806080609060b560b560b560d560fa60e561056105" +
		"60f0610061006100610060106020602060256020602060306030603a604060406040604060406045605060506055605a605a" +
		"6060606060706070608060806080609060b560b560b560d560fa60e56105610560f061006100610061006010602060206025" +
		"6020602060306030603a604060406040604060406045605060506055605a605a6060606060706070608060806080609060b5" +
		"60b560b560d560fa60e56105610560f0610061006100610060106020602060256020602060306030603a6040604060406040" +
		"60406045605060506055605a605a6060606060706070608060806080609060b560b560b560d560fa60e56105610560f06100" +
		"61006100610060106020602060256020602060306030603a604060406040604060406045605060506055605a605a60606060" +
		"60706070608060806080609060b560b560b560d560fa60e56105610560f06100610061006100601060206020602560206020" +
		"60306030603a604060406040604060406045605060506055605a605a6060606060706070608060806080609060b560b560b5" +
		"60d560fa60e56105610560f0610061006100610060106020602060256020602060306030603a604060406040604060406045" +
		"605060506055605a605a6060606060706070608060806080609060b560b560b560d560fa60e56105610560f0610061006100" +
		"610060106020602060306030603f60306030603a603a604a604060406040604a605560606060606060656060606060606080" +
		"608a60806090609060b560ca60c560d560fa60e56105610560f060f061006100610060106020602060306030603f60306030" +
		"603a603a604a604060406040604a605560606060606060656060606060606080608a60806090609060b560ca60c560d560fa" +
		"60e56105610560f060f061006100610060106020602060306030603f60306030603a603a604a604060406040604a60556060" +
		"6060606060656060606060606080608a60806090609060b560ca60c560d560fa60e56105610560f060f06100610061006010" +
		"6020602060306030603f60306030603a603a604a604060406040604a605560606060606060656060606060606080608a6080" +
		"6090609060b560ca60c560d560fa60e56105610560f060f061006100610060106020602060306030603f60306030603a603a" +
		"604a604060406040604a605560606060606060656060606060606080608a60806090609060b560ca60c560d560fa60e56105" +
		"610560f060f061006100610060106020602060306030603f60306030603a603a604a604060406040604a6055606060606060" +
		"60656060606060606080608a60806090609060b560ca60c560d560fa60e56105610560f060f0610061006100601060206020" +
		"60306030603f60306030603a603a604a604060406040604a605560606060606060656060606060606080608a608060906090" +
		"60b560ca60c560d560fa60e56105610560f060f061006100610060106020602060306030603f60306030603a603a604a6040" +
		"60406040604a605560606060606060656060606060606080608a60806090609060b560ca60c560d560fa60e56105610560f0" +
		"60f061006100610060106020602060306030603f60306030603a603a604a604060406040604a605560606060606060656060" +
		"606060606080608a60806090609060b560ca60c560d560fa60e56105610560f060f061006100610060106020602060306030" +
		"603f60306030603a603a604a604060406040604a605560606060606060656060606060606080608a60806090609060b560ca" +
		"60c560d560fa60e56105610560f060f06100610061006010602060206020603060306030603a603060306040604060456045" +
		"604060456050605060606060606560606070608060806080609060a560a060ba60d560e560f560f561056105610561006100" +
		"610061006010602060206020603060306030603a603060306040604060456045604060456050605060606060606560606070" +
		"608060806080609060a560a060ba60d560e560f560f561056105610561006100610061006010602060206020603060306030" +
		"603a603060306040604060456045604060456050605060606060606560606070608060806080609060a560a060ba60d560e5" +
		"60f560f561056105610561006100610061006010602060206020603060306030603a60306030604060406045604560406045" +
		"6050605060606060606560606070608060806080609060a560a060ba60d560e560f560f56105610561056100610061006100" +
		"6010602060206020603060306030603a60306030604060406045604560406045605060506060606060656060607060806080" +
		"6080609060a560a060ba60d560e560f560f561056105610561006100610061006010602060206020603060306030603a6030" +
		"60306040604060456045604060456050605060606060606560606070608060806080609060a560a060ba60d560e560f560f5" +
		"61056105610561006100610061006010602060206020603060306030603a6030603060406040604560456040604560506050" +
		"60606060606560606070608060806080609060a560a060ba60d560e560f560f5610561056105610061006100610060106020" +
		"60206020603060306030603a6030603060406040604560456040604560506050606060606065606060706080608060806090" +
		"60a560a060ba60d560e560f560f561056105610561006100610061006010602060206020603060306030603a603060306040" +
		"604060456045604060456050605060606060606560606070608060806080609060a560a060ba60d560e560f560f561056105" +
		"610561006100610061006010602060206020603060306030603a603060306040604060456045604060456050605060606060" +
		"606560606070608060806080609060a560a060ba60d560e560f560f561056105610561006100610061006010602060206020" +
		"603060306030603a60306030603a60406040604060406040605f605a605f606a606060706070608560856080609060a560b5" +
		"60c560ca60d560f560f560f5610560f061006100610061056010602060206020603060306030603a60306030603a60406040" +
		"604060406040605f605a605f606a606060706070608560856080609060a560b560c560ca60d560f560f560f5610560f06100" +
		"6100610061056010602060206020603060306030603a60306030603a60406040604060406040605f605a605f606a60606070" +
		"6070608560856080609060a560b560c560ca60d560f560f560f5610560f06100610061006105601060206020602060306030" +
		"6030603a60306030603a60406040604060406040605f605a605f606a606060706070608560856080609060a560b560c560ca" +
		"60d560f560f560f5610560f061006100610061056010602060206020603060306030603a60306030603a6040604060406040" +
		"6040605f605a605f606a606060706070608560856080609060a560b560c560ca60d560f560f560f5610560f0610061006100" +
		"61056010602060206020603060306030603a60306030603a60406040604060406040605f605a605f606a6060607060706085" +
		"60856080609060a560b560c560ca60d560f560f560f5610560f061006100610061056010602060206020603060306030603a" +
		"60306030603a60406040604060406040605f605a605f606a606060706070608560856080609060a560b560c560ca60d560f5" +
		"60f560f5610560f061006100610061056010602060206020603060306030603a60306030603a60406040604060406040605f" +
		"605a605f606a606060706070608560856080609060a560b560c560ca60d560f560f560f5610560f061006100610061056010" +
		"602060206020603060306030603a60306030603a60406040604060406040605f605a605f606a606060706070608560856080" +
		"609060a560b560c560ca60d560f560f560f5610560f061006100610061056010602060206020603060306030603a60306030" +
		"603a60406040604060406040605f605a605f606a606060706070608560856080609060a560b560c560ca60d560f560f560f5" +
		"610560f06100610061006105"

const (
	tableMinM   = 10
	tableMaxM   = 100
	tableMaxEps = 40
)
