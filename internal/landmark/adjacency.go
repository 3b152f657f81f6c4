package landmark

// Body landmark indices, 17-keypoint COCO convention.
const (
	Nose          = 0
	LeftEye       = 1
	RightEye      = 2
	LeftEar       = 3
	RightEar      = 4
	LeftShoulder  = 5
	RightShoulder = 6
	LeftElbow     = 7
	RightElbow    = 8
	LeftWrist     = 9
	RightWrist    = 10
	LeftHip       = 11
	RightHip      = 12
	LeftKnee      = 13
	RightKnee     = 14
	LeftAnkle     = 15
	RightAnkle    = 16
	NumBodyPoints = 17
)

// Hand landmark indices following the MediaPipe hand convention.
const (
	Wrist         = 0
	ThumbCMC      = 1
	ThumbMCP      = 2
	ThumbIP       = 3
	ThumbTip      = 4
	IndexMCP      = 5
	IndexPIP      = 6
	IndexDIP      = 7
	IndexTip      = 8
	MiddleMCP     = 9
	MiddlePIP     = 10
	MiddleDIP     = 11
	MiddleTip     = 12
	RingMCP       = 13
	RingPIP       = 14
	RingDIP       = 15
	RingTip       = 16
	PinkyMCP      = 17
	PinkyPIP      = 18
	PinkyDIP      = 19
	PinkyTip      = 20
	NumHandPoints = 21
)

// NumFacePoints is the size of the face oval contour ring emitted by the
// holistic service after downsampling the full mesh.
const NumFacePoints = 36

// BodyConnections is the COCO-17 skeleton: limbs, torso box, and the
// nose/eye/ear wiring of the head.
var BodyConnections = [][2]int{
	{LeftAnkle, LeftKnee},
	{LeftKnee, LeftHip},
	{RightAnkle, RightKnee},
	{RightKnee, RightHip},
	{LeftHip, RightHip},
	{LeftShoulder, LeftHip},
	{RightShoulder, RightHip},
	{LeftShoulder, RightShoulder},
	{LeftShoulder, LeftElbow},
	{RightShoulder, RightElbow},
	{LeftElbow, LeftWrist},
	{RightElbow, RightWrist},
	{LeftEye, RightEye},
	{Nose, LeftEye},
	{Nose, RightEye},
	{LeftEye, LeftEar},
	{RightEye, RightEar},
	{LeftEar, LeftShoulder},
	{RightEar, RightShoulder},
}

// HandConnections wires the 21 hand landmarks into palm and finger chains.
var HandConnections = [][2]int{
	{Wrist, ThumbCMC}, {ThumbCMC, ThumbMCP}, {ThumbMCP, ThumbIP}, {ThumbIP, ThumbTip},
	{Wrist, IndexMCP}, {IndexMCP, IndexPIP}, {IndexPIP, IndexDIP}, {IndexDIP, IndexTip},
	{IndexMCP, MiddleMCP}, {MiddleMCP, MiddlePIP}, {MiddlePIP, MiddleDIP}, {MiddleDIP, MiddleTip},
	{MiddleMCP, RingMCP}, {RingMCP, RingPIP}, {RingPIP, RingDIP}, {RingDIP, RingTip},
	{RingMCP, PinkyMCP}, {PinkyMCP, PinkyPIP}, {PinkyPIP, PinkyDIP}, {PinkyDIP, PinkyTip},
	{Wrist, PinkyMCP},
}

// FaceConnections closes the face oval contour into a ring.
var FaceConnections = faceRing()

func faceRing() [][2]int {
	ring := make([][2]int, NumFacePoints)
	for i := 0; i < NumFacePoints; i++ {
		ring[i] = [2]int{i, (i + 1) % NumFacePoints}
	}
	return ring
}

// Connections returns the fixed adjacency table for a group name. Unknown
// group names have no edges.
func Connections(group string) [][2]int {
	switch group {
	case GroupBody:
		return BodyConnections
	case GroupLeftHand, GroupRightHand:
		return HandConnections
	case GroupFace:
		return FaceConnections
	default:
		return nil
	}
}

// bodyPointNames maps COCO indices to their conventional names.
var bodyPointNames = []string{
	"nose", "left_eye", "right_eye", "left_ear", "right_ear",
	"left_shoulder", "right_shoulder", "left_elbow", "right_elbow",
	"left_wrist", "right_wrist", "left_hip", "right_hip",
	"left_knee", "right_knee", "left_ankle", "right_ankle",
}

// BodyPointName returns the conventional name for a body landmark index,
// or the empty string for an out-of-range index.
func BodyPointName(i int) string {
	if i < 0 || i >= len(bodyPointNames) {
		return ""
	}
	return bodyPointNames[i]
}
