//go:build integration_test || all_tests

package test

const initSQL = `
CREATE TABLE public.users
(
    id            UUID PRIMARY KEY,
    username      VARCHAR(150) NOT NULL UNIQUE,
    email         VARCHAR(254) NOT NULL UNIQUE,
    password_hash VARCHAR      NOT NULL,
    is_private    BOOLEAN      NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE TABLE public.food
(
    id               UUID PRIMARY KEY,
    name             VARCHAR(255)  NOT NULL,
    brand_name       VARCHAR(255)  NOT NULL DEFAULT '',
    data_value       INTEGER       NOT NULL,
    data_measurement VARCHAR(3)    NOT NULL,
    energy           INTEGER       NOT NULL,
    protein          NUMERIC(7, 2) NOT NULL,
    carbohydrate     NUMERIC(7, 2) NOT NULL,
    fat              NUMERIC(7, 2) NOT NULL,
    saturates        NUMERIC(7, 2) NOT NULL,
    sugars           NUMERIC(7, 2) NOT NULL,
    fibre            NUMERIC(7, 2) NOT NULL,
    salt             NUMERIC(7, 2) NOT NULL,
    created_by       UUID          NOT NULL REFERENCES users (id),
    created_at       TIMESTAMPTZ   NOT NULL DEFAULT now()
);
CREATE INDEX ix_food_name ON public.food (name);

CREATE TABLE public.meal_of_day
(
    id       UUID PRIMARY KEY,
    name     VARCHAR(64) NOT NULL,
    slug     VARCHAR(64) NOT NULL UNIQUE,
    ordering INTEGER     NOT NULL
);

INSERT INTO public.meal_of_day (id, name, slug, ordering)
VALUES ('7c1f3a5e-0c1d-4d2b-9a55-0d7f6c1b0a01', 'Breakfast', 'breakfast', 1),
       ('7c1f3a5e-0c1d-4d2b-9a55-0d7f6c1b0a02', 'Lunch', 'lunch', 2),
       ('7c1f3a5e-0c1d-4d2b-9a55-0d7f6c1b0a03', 'Dinner', 'dinner', 3),
       ('7c1f3a5e-0c1d-4d2b-9a55-0d7f6c1b0a04', 'Snack', 'snack', 4);

CREATE TABLE public.diet
(
    id             UUID PRIMARY KEY,
    user_id        UUID          NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    date           DATE          NOT NULL,
    meal_of_day_id UUID          NOT NULL REFERENCES meal_of_day (id),
    food_id        UUID          NOT NULL REFERENCES food (id),
    quantity       NUMERIC(7, 4) NOT NULL,
    created_at     TIMESTAMPTZ   NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ   NOT NULL DEFAULT now()
);
CREATE INDEX ix_diet_user_date ON public.diet (user_id, date);

CREATE TABLE public.progress
(
    id           UUID PRIMARY KEY,
    user_id      UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    date         DATE NOT NULL,
    weight_kg    NUMERIC(5, 2),
    energy_burnt INTEGER,
    notes        TEXT,
    UNIQUE (user_id, date)
);

CREATE TABLE public.profile
(
    id             UUID PRIMARY KEY,
    user_id        UUID        NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
    sex            VARCHAR(1)  NOT NULL,
    height         INTEGER     NOT NULL,
    date_of_birth  DATE        NOT NULL,
    activity_level VARCHAR(2)  NOT NULL,
    fitness_goal   VARCHAR(2)  NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE public.diet_target
(
    id           UUID PRIMARY KEY,
    user_id      UUID          NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    date         DATE          NOT NULL,
    weight       NUMERIC(5, 2) NOT NULL,
    energy       INTEGER       NOT NULL,
    protein      NUMERIC(7, 2) NOT NULL,
    carbohydrate NUMERIC(7, 2) NOT NULL,
    fat          NUMERIC(7, 2) NOT NULL,
    saturates    NUMERIC(7, 2) NOT NULL,
    sugars       NUMERIC(7, 2) NOT NULL,
    fibre        NUMERIC(7, 2) NOT NULL,
    salt         NUMERIC(7, 2) NOT NULL,
    created_at   TIMESTAMPTZ   NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ   NOT NULL DEFAULT now(),
    UNIQUE (user_id, date)
);

CREATE TABLE public.workout_set
(
    id           UUID PRIMARY KEY,
    user_id      UUID          NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    date         DATE          NOT NULL,
    movement     VARCHAR(100)  NOT NULL,
    weight_kg    NUMERIC(6, 2),
    reps         INTEGER       NOT NULL,
    rest_seconds INTEGER,
    notes        TEXT,
    created_at   TIMESTAMPTZ   NOT NULL DEFAULT now()
);
CREATE INDEX ix_workout_set_user_date ON public.workout_set (user_id, date);

CREATE TABLE public.saved_meal
(
    id         UUID PRIMARY KEY,
    user_id    UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    name       VARCHAR(15) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX ix_saved_meal_user ON public.saved_meal (user_id);

CREATE TABLE public.saved_meal_food
(
    id            UUID PRIMARY KEY,
    saved_meal_id UUID          NOT NULL REFERENCES saved_meal (id) ON DELETE CASCADE,
    food_id       UUID          NOT NULL REFERENCES food (id),
    quantity      NUMERIC(7, 4) NOT NULL,
    created_at    TIMESTAMPTZ   NOT NULL DEFAULT now()
);
`
