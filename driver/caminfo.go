package driver

import (
	"io/ioutil"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"

	"github.com/autonomylab/bebop-driver-go/msgs/sensor_msgs"
)

// loadCameraInfo reads a JSON calibration document named by url, which
// may be a bare path or a file:// URL. An empty locator yields the
// uncalibrated template: zero matrices, dimensions filled in from the
// stream at publish time.
func loadCameraInfo(url string) (*sensor_msgs.CameraInfo, error) {
	if url == "" {
		return uncalibratedInfo(), nil
	}
	path := strings.TrimPrefix(url, "file://")
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading camera calibration")
	}
	ci, err := parseCameraInfo(data)
	return ci, errors.Wrap(err, "parsing camera calibration")
}

func uncalibratedInfo() *sensor_msgs.CameraInfo {
	return &sensor_msgs.CameraInfo{}
}

func parseCameraInfo(data []byte) (*sensor_msgs.CameraInfo, error) {
	ci := uncalibratedInfo()

	if w, err := jsonparser.GetInt(data, "image_width"); err == nil {
		ci.Width = uint32(w)
	}
	if h, err := jsonparser.GetInt(data, "image_height"); err == nil {
		ci.Height = uint32(h)
	}
	if s, err := jsonparser.GetString(data, "distortion_model"); err == nil {
		ci.DistortionModel = s
	}

	if err := readFixedMatrix(data, ci.K[:], "camera_matrix"); err != nil {
		return nil, err
	}
	if err := readFixedMatrix(data, ci.R[:], "rectification_matrix"); err != nil {
		return nil, err
	}
	if err := readFixedMatrix(data, ci.P[:], "projection_matrix"); err != nil {
		return nil, err
	}

	d, err := readMatrix(data, "distortion_coefficients")
	if err != nil {
		return nil, err
	}
	ci.D = d
	return ci, nil
}

// readMatrix collects <key>.data as a float slice. A missing key is not
// an error; the calibration simply does not carry that matrix.
func readMatrix(data []byte, key string) ([]float64, error) {
	var vals []float64
	var elemErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		f, ferr := jsonparser.ParseFloat(value)
		if ferr != nil {
			elemErr = errors.Wrapf(ferr, "calibration matrix %q", key)
			return
		}
		vals = append(vals, f)
	}, key, "data")
	if err == jsonparser.KeyPathNotFoundError {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "calibration matrix %q", key)
	}
	return vals, elemErr
}

func readFixedMatrix(data []byte, dst []float64, key string) error {
	vals, err := readMatrix(data, key)
	if err != nil {
		return err
	}
	if vals == nil {
		return nil
	}
	if len(vals) != len(dst) {
		return errors.Errorf("calibration matrix %q has %d values, want %d", key, len(vals), len(dst))
	}
	copy(dst, vals)
	return nil
}
